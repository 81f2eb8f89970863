package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// DateLayout renders timestamps with millisecond precision in UTC, e.g.
// 2023-08-25T11:58:00.323Z.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// IsTruthy converts a raw storage or payload value into a boolean.
// nil, false, zero numbers, NaN and empty strings are false; every other
// value is true. Raw driver bytes are parsed as a boolean first ("f", "0").
// Deletion flags stored as 0/1 integers or as booleans go through here
// exactly once, when the row enters the system.
func IsTruthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case []byte:
		if b, err := strconv.ParseBool(string(x)); err == nil {
			return b
		}
		return len(x) > 0
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}

// present treats absent keys, nulls and empty strings as not provided.
func present(p Payload, key string) bool {
	v, ok := p[key]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString && s == "" {
		return false
	}
	return true
}

// requireStrings checks presence of every key first and only then their types.
func requireStrings(entity string, p Payload, keys ...string) ([]string, error) {
	for _, key := range keys {
		if !present(p, key) {
			return nil, internal_errors.NewValidationError(entity, internal_errors.MissingProperty)
		}
	}

	values := make([]string, len(keys))
	for i, key := range keys {
		s, ok := p[key].(string)
		if !ok {
			return nil, internal_errors.NewValidationError(entity, internal_errors.InvalidType)
		}
		values[i] = s
	}
	return values, nil
}
