// Package validate checks request DTOs with go-playground/validator tags.
//
// Besides the built-in tags it registers:
//
//	clock     "HH:MM"
//	date      "yyyy-mm-dd"
//	datetime  "yyyy-mm-dd HH:MM"
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ClockLayout    = "15:04"
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = val.RegisterValidation("clock", layout(ClockLayout))
	_ = val.RegisterValidation("date", layout(DateLayout))
	_ = val.RegisterValidation("datetime", layout(DateTimeLayout))
	return val
}

func layout(l string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(l, fl.Field().String())
		return err == nil
	}
}

// Struct validates s and flattens failures into one readable error.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "clock":
		return field + " must be HH:MM"
	case "date":
		return field + " must be yyyy-mm-dd"
	case "datetime":
		return field + " must be yyyy-mm-dd HH:MM"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, minimum(fe))
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

func minimum(fe validator.FieldError) string {
	if fe.Tag() == "gt" {
		return "above " + fe.Param()
	}
	return fe.Param()
}
