package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with the tracker's rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator that understands decimal amounts and
// reports fields by their JSON names.
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("not_blank", validateNotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// decimalValue hands decimal.Decimal fields to the rules as strings so no
// precision is lost before the money rule sees them.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// validateMoney accepts amounts with at most 2 decimal places
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	if !ok {
		return false
	}
	return d.Equal(d.Truncate(2))
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		return d, err == nil
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(field.Float()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(field.Int()), true
	default:
		return decimal.Zero, false
	}
}
