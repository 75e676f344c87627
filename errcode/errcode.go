package errcode

// Code is a stable error identifier for the data-exchange surface.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK        Code = "ok"
	Timeout   Code = "timeout"
	Full      Code = "full"
	Empty     Code = "empty"
	Unusable  Code = "unusable"
	Unwritten Code = "unwritten"

	Error Code = "error" // generic fallback
)

// E wraps a Code with an operation name and an optional cause.
type E struct {
	C   Code
	Op  string
	Err error
}

func (e *E) Error() string {
	if e.Op != "" {
		return e.Op + ": " + string(e.C)
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
