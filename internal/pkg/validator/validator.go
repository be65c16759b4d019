package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/branch-finder/internal/domain"
	"github.com/branch-finder/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report json field names so error details match what the caller sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// public_type accepts the caller-facing type filters known to the domain.
	_ = validate.RegisterValidation("public_type", func(fl validator.FieldLevel) bool {
		_, ok := domain.BackendTypeGroup(domain.PublicType(fl.Field().String()))
		return ok
	})
}

// Validate checks s against its struct tags. Validation failures are returned as an
// invalid_arguments AppError with one detail entry per offending field.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrInvalidArguments.WithMessage(err.Error())
	}

	details := make(map[string]interface{}, len(verrs))
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = describe(fe)
		fields = append(fields, fe.Field())
	}

	return errors.ErrInvalidArguments.
		WithMessage(fmt.Sprintf("invalid value for %s", strings.Join(fields, ", "))).
		WithDetails(details)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "public_type":
		names := make([]string, 0, 3)
		for _, t := range domain.PublicTypes() {
			names = append(names, string(t))
		}
		return "must be one of " + strings.Join(names, " ")
	default:
		return "failed " + fe.Tag() + " check"
	}
}
