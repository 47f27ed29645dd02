package delivery

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// registerValidation makes validation errors report JSON field names.
func registerValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if tag == "" || tag == "-" {
				return f.Name
			}
			return tag
		})
	})
}

// validationMessage turns a binding error into one readable sentence.
func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return "request body must be valid JSON"
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fmt.Sprintf("%s %s", fieldName(fe), fieldMessage(fe)))
	}
	sort.Strings(messages)
	return strings.Join(messages, "; ")
}

// selectedMedias[0] reads better as selectedMedias
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i > 0 {
		return name[:i]
	}
	return name
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	}
	return "is invalid"
}
