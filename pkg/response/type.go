package response

// MessageSuccess is the message carried by success envelopes.
const MessageSuccess = "success"

// Resp is the standard JSON success envelope.
type Resp struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrBody is the JSON body written for a failed request.
//
// status and message are always present. The remaining fields appear only
// when the source error carried them (non-zero / non-empty) and, for stack,
// only when trace output is enabled by the responder configuration.
type ErrBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
	Name    string `json:"name,omitempty"`
	Type    string `json:"type,omitempty"`
	Stack   string `json:"stack,omitempty"`
}
