package usage

import "fmt"

// NotRoot is returned when a privileged operation runs without root.
func NotRoot(verb string) *Error {
	return &Error{
		Kind:    ErrNotRoot,
		Message: fmt.Sprintf("unitctl: operation '%s' requires root privileges", verb),
	}
}

// UnknownUnit is returned when an operation names a unit with no unit file.
func UnknownUnit(name string) *Error {
	return &Error{
		Kind:    ErrUnknownUnit,
		Message: fmt.Sprintf("unitctl: unit '%s' not found", name),
	}
}
