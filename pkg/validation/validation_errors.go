package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"seo-audit-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps JSON field names to the labels used in messages.
var FieldLabels = map[string]string{
	"name":        "Name",
	"email":       "Email",
	"phone":       "Phone number",
	"countryCode": "Country code",
	"website":     "Website",
	"message":     "Message",
}

// minUnits overrides the unit used in "at least N ..." messages.
var minUnits = map[string]string{
	"phone": "digits",
}

// FormatValidationErrors converts validator.ValidationErrors into one entry
// per field, in the order the validator reported them. Only the first
// failing rule of a field is kept.
func FormatValidationErrors(err error) []domain.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	seen := make(map[string]bool, len(validationErrors))
	out := make([]domain.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		path := fieldPath(e)
		if seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, domain.FieldError{Field: path, Message: formatSingleError(e)})
	}
	return out
}

// DecodeFields decodes a JSON object into the struct pointed to by dst one
// field at a time. A field whose value has the wrong JSON type is left at its
// zero value and reported as "Expected <kind>"; every other field is still
// decoded so the caller can validate it. The error is non-nil only when body
// is not a JSON object.
func DecodeFields(body []byte, dst any) ([]domain.FieldError, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("validation: DecodeFields needs a struct pointer, got %T", dst)
	}
	sv := rv.Elem()
	st := sv.Type()

	var errs []domain.FieldError
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		name := jsonFieldName(sf)
		if !sf.IsExported() || name == "" {
			continue
		}
		value, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}

		target := reflect.New(sf.Type)
		if err := json.Unmarshal(value, target.Interface()); err != nil {
			errs = append(errs, domain.FieldError{
				Field:   name,
				Message: fmt.Sprintf("Expected %s", sf.Type.Kind()),
			})
			continue
		}
		sv.Field(i).Set(target.Elem())
	}
	return errs, nil
}

// MergeFieldErrors combines error lists into one entry per field, ordered by
// the declaration order of the struct dst points to. When a field appears in
// several lists, the earlier list wins. Fields unknown to dst go last.
func MergeFieldErrors(dst any, lists ...[]domain.FieldError) []domain.FieldError {
	order := map[string]int{}
	if t := reflect.TypeOf(dst); t != nil {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() == reflect.Struct {
			for i := 0; i < t.NumField(); i++ {
				if name := jsonFieldName(t.Field(i)); name != "" {
					order[name] = i
				}
			}
		}
	}

	seen := map[string]bool{}
	var out []domain.FieldError
	for _, list := range lists {
		for _, fe := range list {
			if seen[fe.Field] {
				continue
			}
			seen[fe.Field] = true
			out = append(out, fe)
		}
	}

	rank := func(field string) int {
		if i, ok := order[field]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].Field) < rank(out[j].Field)
	})
	return out
}

// fieldPath drops the root struct name from the namespace: "SubmissionRequest.name" -> "name".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return e.Field()
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	label := getFieldLabel(field)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		unit := "characters"
		if u, ok := minUnits[field]; ok {
			unit = u
		}
		return fmt.Sprintf("%s must be at least %s %s", label, e.Param(), unit)

	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())

	case "email", "email_domain":
		return fmt.Sprintf("Invalid %s address", strings.ToLower(label))

	case "url":
		return fmt.Sprintf("Invalid %s URL", strings.ToLower(label))

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(e.Param()), ", "))

	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
