package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/backoffice-api/internal/errors"
	"github.com/yukikurage/backoffice-api/internal/models"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding tags on gin's validator and
// makes validation errors report JSON field names. Safe to call repeatedly.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		mustRegister(v, "visibility", func(fl validator.FieldLevel) bool {
			return models.Visibility(fl.Field().String()).Valid()
		})
		mustRegister(v, "org_role", func(fl validator.FieldLevel) bool {
			return models.OrganizationRole(fl.Field().String()).Valid()
		})
	})
}

// mustRegister panics at startup when a custom tag cannot be installed, so a
// broken tag never reaches request handling.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validator: %v", tag, err))
	}
}

// validationDetails turns binding failures into per-field messages.
func validationDetails(err error) ([]apierrors.FieldError, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]apierrors.FieldError, len(verrs))
		for i, fe := range verrs {
			details[i] = apierrors.FieldError{Field: fe.Field(), Message: describeTag(fe)}
		}
		return details, true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []apierrors.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be %s", typeErr.Type.String()),
		}}, true
	}
	return nil, false
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "visibility":
		return "must be one of public, private, restricted"
	case "org_role":
		return "must be one of owner, admin, member, viewer"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
