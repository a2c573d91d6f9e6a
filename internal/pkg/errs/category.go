package errs

import cr "github.com/cockroachdb/errors"

// Categories used by the HTTP layer to pick a status code.
var (
	ErrNotFound        = cr.New("resource not found")
	ErrInvalidRequest  = cr.New("invalid request")
	ErrForbidden       = cr.New("access forbidden")
	ErrUnauthenticated = cr.New("unauthenticated")
)

func NotFound(msg string) error {
	return cr.Mark(cr.New(msg), ErrNotFound)
}

func Invalid(msg string) error {
	return cr.Mark(cr.New(msg), ErrInvalidRequest)
}

func Invalidf(format string, args ...any) error {
	return cr.Mark(cr.Newf(format, args...), ErrInvalidRequest)
}

func Forbidden(msg string) error {
	return cr.Mark(cr.New(msg), ErrForbidden)
}

func Unauthenticated(msg string) error {
	return cr.Mark(cr.New(msg), ErrUnauthenticated)
}

// IsCategorized reports whether err carries one of the client-facing categories.
func IsCategorized(err error) bool {
	return cr.Is(err, ErrNotFound) ||
		cr.Is(err, ErrInvalidRequest) ||
		cr.Is(err, ErrForbidden) ||
		cr.Is(err, ErrUnauthenticated)
}
