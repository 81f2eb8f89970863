package api

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"  // client error, 4xx
	StatusError   = "error" // server error, 5xx
)

// Response is the body of every JSON reply.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Response {
	return Response{Status: StatusSuccess, Data: data}
}

// Failure picks fail or error from the HTTP status.
func Failure(statusCode int, message string) Response {
	status := StatusFail
	if statusCode >= 500 {
		status = StatusError
	}
	return Response{Status: status, Message: message}
}
