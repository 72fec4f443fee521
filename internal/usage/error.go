package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownOperation
	ErrMissingOperation
	ErrTooFewArguments
	ErrTooManyArguments
	ErrInvalidFlag
	ErrNotRoot
	ErrUnknownUnit
	ErrUnknownConfigKey
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Privilege check failure
//	  - Unknown unit
//
//	Exit 2: User input errors
//	  - Unknown or missing operation
//	  - Argument count out of bounds
//	  - Invalid flag
//	  - Unknown config key
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrUnknownOperation: 2,
	ErrMissingOperation: 2,
	ErrTooFewArguments:  2,
	ErrTooManyArguments: 2,
	ErrInvalidFlag:      2,
	ErrNotRoot:          1,
	ErrUnknownUnit:      1,
	ErrUnknownConfigKey: 2,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // explicit override; computed from Kind when zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
