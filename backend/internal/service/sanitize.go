package service

import (
	"html"
	"maps"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

// maxCleanPasses bounds cleanText.
const maxCleanPasses = 3

// cleanText strips markup the UGC policy does not allow and leaves plain text
// as typed. The policy escapes its output, so it is unescaped again before
// storage; repeating until stable catches markup hidden behind entities.
func cleanText(s string) string {
	for range maxCleanPasses {
		next := html.UnescapeString(ugcPolicy.Sanitize(s))
		if next == s {
			return s
		}
		s = next
	}
	return s
}

// sanitizePayload returns a copy of payload with the string values under keys
// cleaned. Other values are left for the validators to reject.
func sanitizePayload(payload domain.Payload, keys ...string) domain.Payload {
	out := make(domain.Payload, len(payload))
	maps.Copy(out, payload)
	for _, key := range keys {
		if s, ok := out[key].(string); ok {
			out[key] = cleanText(s)
		}
	}
	return out
}
