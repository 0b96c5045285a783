package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Dotted domain with at least two labels and a TLD of two or more letters.
var emailDomainRegex = regexp.MustCompile(`^([A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?\.)+[A-Za-z]{2,}$`)

// New returns a validator that reports fields by their JSON names and knows
// the custom tags below.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_domain", EmailDomain)
}

// EmailDomain rejects addresses whose domain has no TLD, such as a@b,
// which the plain email tag lets through.
func EmailDomain(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	at := strings.LastIndexByte(val, '@')
	if at < 0 {
		return false
	}
	return emailDomainRegex.MatchString(val[at+1:])
}

// jsonFieldName maps a struct field to the name the client sent it under.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
