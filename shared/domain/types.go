package domain

type (
	UserId   = string
	Username = string

	ThreadId    = string
	ThreadTitle = string
	ThreadBody  = string

	CommentId      = string
	CommentContent = string
)

// Payload is an untyped request body as produced by encoding/json.
type Payload = map[string]any
