// Package validation checks decoded request bodies and reports failures
// per JSON field with English messages.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator wraps a go-playground validator with its translator.
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

func New() *Validator {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	// Use JSON tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	return &Validator{validate: v, trans: trans}
}

// Struct validates s and returns field name → message, or nil when s is
// valid.
func (v *Validator) Struct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Namespace()] = fe.Translate(v.trans)
		}
		return fields
	}
	fields["detail"] = err.Error()
	return fields
}

// First returns one field and its message, in a stable order.
func First(fields map[string]string) (string, string) {
	var field string
	for f := range fields {
		if field == "" || f < field {
			field = f
		}
	}
	return field, fields[field]
}
