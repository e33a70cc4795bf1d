package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/shiftpay/internal/domain"
	"github.com/shopspring/decimal"
)

// Validate is the shared validator. Decimals are compared as floats and field
// names in messages use their yaml keys.
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	Validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"yaml", "mapstructure"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	_ = Validate.RegisterValidation("filingstatus", func(fl validator.FieldLevel) bool {
		return domain.FilingStatus(fl.Field().String()).Valid()
	})
	_ = Validate.RegisterValidation("statecode", func(fl validator.FieldLevel) bool {
		return domain.StateCode(fl.Field().String()).Valid()
	})
}

// ValidateStruct runs the validator and flattens failures into one error
// with a readable line per field.
func ValidateStruct(s any) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "filingstatus":
		return fmt.Sprintf("%s %q is not a filing status (single, mfj, hoh, mfs)", field, fe.Value())
	case "statecode":
		return fmt.Sprintf("%s %q is not a state code", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed validation %q", field, fe.Tag())
	}
}
