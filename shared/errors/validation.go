package errors

import "net/http"

type ValidationKind int

const (
	MissingProperty ValidationKind = iota + 1
	InvalidType
)

func (k ValidationKind) String() string {
	switch k {
	case MissingProperty:
		return "NOT_CONTAIN_NEEDED_PROPERTY"
	case InvalidType:
		return "NOT_MEET_DATA_TYPE_SPECIFICATION"
	default:
		return "UNKNOWN"
	}
}

// ValidationError is returned by entity constructors before any I/O happens.
// Entity is the upper snake case name of the payload, e.g. ADD_THREAD.
type ValidationError struct {
	Entity string
	Kind   ValidationKind
}

func (e *ValidationError) Error() string {
	return e.Entity + "." + e.Kind.String()
}

// Is matches any ValidationError of the same kind, so
// errors.Is(err, ErrMissingProperty) works regardless of the entity.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Entity == "" || t.Entity == e.Entity)
}

func (e *ValidationError) StatusCode() int {
	return http.StatusBadRequest
}

var (
	ErrMissingProperty = &ValidationError{Kind: MissingProperty}
	ErrInvalidType     = &ValidationError{Kind: InvalidType}
)

func NewValidationError(entity string, kind ValidationKind) *ValidationError {
	return &ValidationError{Entity: entity, Kind: kind}
}
