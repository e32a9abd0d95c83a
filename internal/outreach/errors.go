package outreach

import "fmt"

// TemplateError indicates the outreach email template failed to render.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
