package render

import "fmt"

// Error codes returned by the generator.
const (
	// ErrCodeDestinationFailed indicates the output file or directory
	// could not be prepared.
	ErrCodeDestinationFailed = "DESTINATION_FAILED"

	// ErrCodeDrawFailed indicates the PDF engine reported an error
	// while blocks were being painted.
	ErrCodeDrawFailed = "DRAW_FAILED"

	// ErrCodeOutputFailed indicates the finished document could not be
	// serialized to its destination.
	ErrCodeOutputFailed = "OUTPUT_FAILED"
)

// RenderError describes a failure while producing a document.
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a RenderError with the given code and cause.
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
