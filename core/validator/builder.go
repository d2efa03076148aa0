package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
)

const defaultLocale = "en"

// Translation describes the message of a custom tag.
type Translation struct {
	Tag             string
	Message         string
	Override        bool
	TranslationFunc func(ut.Translator, validator.FieldError) string
}

// FieldValidation is a custom validation tag.
type FieldValidation struct {
	Tag  string
	Func validator.Func
}

// FieldError maps a field path to its translated violation.
type FieldError map[string]string

func (f FieldError) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, f[k]))
	}
	return strings.Join(msgs, "; ")
}

// Builder builds a validator reporting translated messages keyed by the
// field names of a struct tag.
type Builder struct {
	tagName          string
	fieldValidations []FieldValidation
	translations     []Translation

	validate   *validator.Validate
	translator ut.Translator
}

// NewBuilder initializes a builder naming fields after their json tag.
func NewBuilder() *Builder {
	return &Builder{tagName: "json"}
}

// WithTagName names fields after the given struct tag, such as mapstructure.
func (b *Builder) WithTagName(tag string) *Builder {
	output := *b
	output.tagName = tag
	return &output
}

// WithFieldValidations tells builder to include custom field validation
func (b *Builder) WithFieldValidations(fieldValidations []FieldValidation) *Builder {
	output := *b
	output.fieldValidations = fieldValidations
	return &output
}

// WithTranslations tells builder to include custom translation
func (b *Builder) WithTranslations(translations []Translation) *Builder {
	output := *b
	output.translations = translations
	return &output
}

// Build builds the validator
func (b *Builder) Build() (*Builder, error) {
	universalTranslator := ut.New(en.New(), en.New())
	b.translator, _ = universalTranslator.GetTranslator(defaultLocale)

	b.validate = validator.New()
	b.validate.RegisterTagNameFunc(b.tagNameFunc)
	if err := en_translation.RegisterDefaultTranslations(b.validate, b.translator); err != nil {
		return nil, err
	}

	for _, f := range b.fieldValidations {
		if err := b.validate.RegisterValidation(f.Tag, f.Func); err != nil {
			return nil, err
		}
	}
	for _, t := range b.translations {
		transFunc := t.TranslationFunc
		if transFunc == nil {
			transFunc = b.transFunc
		}
		if err := b.validate.RegisterTranslation(t.Tag, b.translator, getRegisterFn(t.Tag, t.Message, t.Override), transFunc); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Validate validates the struct, returning a FieldError on violations.
func (b *Builder) Validate(s interface{}) error {
	err := b.validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fieldErrors := make(FieldError)
	for _, f := range validationErrs {
		field := f.Namespace()
		if parts := strings.SplitN(field, ".", 2); len(parts) > 1 {
			field = parts[1]
		}
		fieldErrors[field] = f.Translate(b.translator)
	}
	return fieldErrors
}

func (b *Builder) tagNameFunc(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get(b.tagName), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func (b *Builder) transFunc(ut ut.Translator, fe validator.FieldError) string {
	t, _ := ut.T(fe.Tag(), fe.Field(), fe.Param())
	return t
}

func getRegisterFn(tag, translation string, override bool) validator.RegisterTranslationsFunc {
	return func(ut ut.Translator) error {
		return ut.Add(tag, translation, override)
	}
}

// DurationValidation accepts strings parsed by time.ParseDuration.
var DurationValidation = FieldValidation{
	Tag: "duration",
	Func: func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	},
}

// DurationTranslation is the message of DurationValidation.
var DurationTranslation = Translation{
	Tag:     "duration",
	Message: "{0} must be a duration such as 5m, got {1}",
	TranslationFunc: func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(fe.Tag(), fe.Field(), fmt.Sprint(fe.Value()))
		return t
	},
}
