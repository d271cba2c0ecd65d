package application

import "fmt"

// Kind tags an Error with its failure class. Handlers map kinds to HTTP
// statuses in exactly one place, so no handler formats errors ad hoc.
type Kind int

const (
	KindValidation Kind = iota // malformed or missing input
	KindConflict               // duplicate username
	KindUnauthorized           // bad credentials or missing identity
	KindNotFound               // unknown build id
	KindInternal               // anything the store or hasher throws at us
)

// Client-facing messages. The credential message is deliberately identical for
// unknown users and wrong passwords so callers cannot enumerate usernames.
const (
	MsgFieldsRequired     = "Username and password are required"
	MsgUsernameTooShort   = "Username must be at least 3 characters"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgUsernameTaken      = "Username already exists"
	MsgInvalidCredentials = "Invalid username or password"
	MsgUserIDRequired     = "User ID is required"
	MsgBuildNotFound      = "Build not found"
	MsgInternal           = "internal server error"
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func validationErr(msg string) *Error   { return &Error{Kind: KindValidation, Message: msg} }
func conflictErr(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func unauthorizedErr(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func notFoundErr(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }

// internalErr keeps the cause for the log but presents the generic message;
// the underlying failure text is never sent to the client.
func internalErr(cause error) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, cause: cause}
}
