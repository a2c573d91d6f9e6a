package request

import (
	"reflect"
	"strings"
	"time"

	"luxstay-api/internal/domain/reservation"
	"luxstay-api/internal/domain/room"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateOnly = "2006-01-02"

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var isoDate validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := ParseDate(s)
	return err == nil
}

var roomType validator.Func = func(fl validator.FieldLevel) bool {
	return room.Type(fl.Field().String()).IsValid()
}

var reservationStatus validator.Func = func(fl validator.FieldLevel) bool {
	return reservation.Status(fl.Field().String()).IsValid()
}

// RegisterValidators adds the custom binding rules to gin's validator and
// makes field errors report json names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	rules := map[string]validator.Func{
		"isodate":           isoDate,
		"roomtype":          roomType,
		"reservationstatus": reservationStatus,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
