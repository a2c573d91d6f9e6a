package httperr

import (
	"log/slog"
	"net/http"
	"unicode"
	"unicode/utf8"

	"luxstay-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Response struct {
	Status  int          `json:"-"`
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details []FieldError) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Error: msg, Details: details}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Respond writes err using its category. Uncategorized errors become a
// generic 500 and are logged with their stack.
func Respond(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "unhandled error",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 12)),
		)
		AbortWithError(c, status, err, internalMessage, nil)
		return
	}
	AbortWithError(c, status, err, Capitalize(errs.Message(err)), nil)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrInvalidRequest):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func Capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
