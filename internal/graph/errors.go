package graph

// Error codes reported in the extensions of GraphQL errors.
const (
	CodeDatabase     = "DATABASE_ERROR"
	CodeBadUserInput = "BAD_USER_INPUT"
)

// Error is a resolver failure carrying a machine readable code.
// The engine copies Extensions into the response error.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}
