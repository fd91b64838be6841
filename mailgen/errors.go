package mailgen

import "fmt"

// ValidationError reports a malformed email request. The web layer maps it
// to a 400 so the user can resubmit the form.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UpstreamError reports a failed or empty response from the completion
// service. It is never retried here; the caller decides what to do.
type UpstreamError struct {
	Reason string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion service: %s: %v", e.Reason, e.Err)
	}
	return "completion service: " + e.Reason
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
