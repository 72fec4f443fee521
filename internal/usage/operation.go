package usage

import "fmt"

// UnknownOperation is returned when the first positional argument does not
// name any verb in the table.
func UnknownOperation(name string) *Error {
	return &Error{
		Kind:    ErrUnknownOperation,
		Message: fmt.Sprintf("unitctl: unknown operation '%s'. See 'unitctl status'.", name),
	}
}

// MissingOperation is returned when no verb name was given and the table
// has no default entry.
func MissingOperation() *Error {
	return &Error{
		Kind:    ErrMissingOperation,
		Message: "unitctl: requires an operation parameter",
	}
}
