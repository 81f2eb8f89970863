package utils

import (
	"strings"

	"github.com/google/uuid"
	"github.com/itchan-dev/forum/shared/domain"
)

// Literal id prefixes. They are part of the stored data format.
const (
	ThreadIdPrefix  = "thread-"
	CommentIdPrefix = "comment-_pby2_"
)

const idSuffixLen = 16

// IdGenerator returns a fresh id suffix on every call.
// Tests inject a constant one.
type IdGenerator func() string

// RandomIdSuffix is the production IdGenerator.
func RandomIdSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
}

// IdScheme mints prefix-tagged entity ids.
type IdScheme struct {
	generate IdGenerator
}

func NewIdScheme(generate IdGenerator) *IdScheme {
	if generate == nil {
		generate = RandomIdSuffix
	}
	return &IdScheme{generate: generate}
}

func (s *IdScheme) ThreadId() domain.ThreadId {
	return ThreadIdPrefix + s.generate()
}

func (s *IdScheme) CommentId() domain.CommentId {
	return CommentIdPrefix + s.generate()
}
