package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// identifierPattern matches unquoted postgres identifiers.
var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

var (
	once     sync.Once
	validate *validator.Validate
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
		return IsIdentifier(fl.Field().String())
	})
	return v
}

// IsIdentifier reports whether s can be used as a table, column or
// trigger name without quoting.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

func ValidateStruct(f interface{}) error {
	err := getValidator().Struct(f)
	return checkError(err)
}

func ValidateOneOf(value string, enums ...string) error {
	tags := "omitempty,oneof=" + strings.Join(enums, " ")
	err := getValidator().Var(value, tags)
	return checkError(err)
}

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = newValidator()
	})
	return validate
}

func checkError(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	errStrs := []string{}
	for _, e := range errs {
		switch e.Tag() {
		case "oneof":
			errStrValue := fmt.Sprintf("error value \"%s\"", e.Value())
			if e.Field() != "" {
				errStrValue = errStrValue + fmt.Sprintf(" for key \"%s\"", e.Field())
			}
			errStrValue = errStrValue + fmt.Sprintf(" not recognized, only support \"%s\"", e.Param())
			errStrs = append(errStrs, errStrValue)
		case "gte":
			errStrs = append(errStrs, fmt.Sprintf("%s cannot be less than %s", e.Field(), e.Param()))
		case "required":
			errStrs = append(errStrs, fmt.Sprintf("%s is required", e.Field()))
		case "identifier":
			errStrs = append(errStrs, fmt.Sprintf("%s %q is not a valid identifier", e.Field(), e.Value()))
		default:
			errStrs = append(errStrs, e.Error())
		}
	}
	return errors.New(strings.Join(errStrs, " and "))
}
