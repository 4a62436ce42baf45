// Package response defines the JSON envelope every endpoint returns.
package response

type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

func Success(statusCode int, data any, message string) Response {
	return Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
	}
}

func Error(statusCode int, message string) Response {
	return Response{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	}
}
