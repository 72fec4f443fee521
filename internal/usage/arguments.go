package usage

import "fmt"

// TooFewArguments is returned when an operation receives fewer arguments
// than its table entry allows.
func TooFewArguments(verb string) *Error {
	return &Error{
		Kind:    ErrTooFewArguments,
		Message: fmt.Sprintf("unitctl: too few arguments for '%s'", verb),
	}
}

// TooManyArguments is returned when an operation receives more arguments
// than its table entry allows.
func TooManyArguments(verb string) *Error {
	return &Error{
		Kind:    ErrTooManyArguments,
		Message: fmt.Sprintf("unitctl: too many arguments for '%s'", verb),
	}
}

// UnknownConfigKey is returned when a config operation names a key that is
// neither in the config file nor among the defaults.
func UnknownConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrUnknownConfigKey,
		Message: fmt.Sprintf("unitctl: unknown config key '%s'", key),
	}
}

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("unitctl: invalid flag '%s'", flag),
	}
}
