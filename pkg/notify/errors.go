package notify

import "fmt"

// FormatError is returned when an SNS timestamp does not match the expected layout
type FormatError struct {
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid timestamp %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid timestamp %q: expected YYYY-MM-DDTHH:MM:SS.ffffffZ", e.Value)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a message body cannot be turned into an attachment.
// Key names the missing key or the offending line, if any.
type ParseError struct {
	Kind string // "notification" or "alarm"
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	switch {
	case e.Key != "" && e.Err != nil:
		return fmt.Sprintf("failed to parse %s message at %q: %v", e.Kind, e.Key, e.Err)
	case e.Key != "":
		return fmt.Sprintf("failed to parse %s message: missing key %q", e.Kind, e.Key)
	case e.Err != nil:
		return fmt.Sprintf("failed to parse %s message: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("failed to parse %s message", e.Kind)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
