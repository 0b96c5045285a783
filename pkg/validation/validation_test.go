package validation_test

import (
	"errors"
	"testing"

	"seo-audit-backend/internal/domain"
	"seo-audit-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type form struct {
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"email,email_domain"`
	Phone   string `json:"phone" validate:"min=10"`
	Website string `json:"website" validate:"omitempty,url"`
	Message string `json:"message" validate:"required,min=10"`
	Ignored string `json:"-" validate:"max=1"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := validation.New()

	err := v.Struct(form{
		Name:    "A",
		Email:   "not-an-email",
		Phone:   "123",
		Website: "bad-url",
		Message: "",
	})
	require.Error(t, err)

	assert.Equal(t, []domain.FieldError{
		{Field: "name", Message: "Name must be at least 2 characters"},
		{Field: "email", Message: "Invalid email address"},
		{Field: "phone", Message: "Phone number must be at least 10 digits"},
		{Field: "website", Message: "Invalid website URL"},
		{Field: "message", Message: "Message is required"},
	}, validation.FormatValidationErrors(err))
}

func TestFormatValidationErrorsKeepsFirstRulePerField(t *testing.T) {
	v := validation.New()

	err := v.Struct(form{
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   "0400000000",
		Message: "short",
	})
	require.Error(t, err)

	errs := validation.FormatValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Message must be at least 10 characters", errs[0].Message)
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, validation.FormatValidationErrors(errors.New("boom")))
}

func TestOptionalWebsite(t *testing.T) {
	v := validation.New()
	valid := form{
		Name:    "Al",
		Email:   "a@b.com",
		Phone:   "1234567890",
		Message: "Please audit my site",
		Ignored: "x",
	}
	assert.NoError(t, v.Struct(valid))

	valid.Website = "https://example.com/page"
	assert.NoError(t, v.Struct(valid))
}

func TestEmailDomain(t *testing.T) {
	v := validation.New()
	base := form{Name: "Al", Phone: "1234567890", Message: "Please audit my site"}

	for _, addr := range []string{"a@b.com", "first.last@mail.example.co.uk", "x+tag@sub-domain.io"} {
		base.Email = addr
		assert.NoError(t, v.Struct(base), addr)
	}

	for _, addr := range []string{"a@b", "a@localhost", "a@b.c", "a@-b.com"} {
		base.Email = addr
		err := v.Struct(base)
		require.Error(t, err, addr)
		assert.Equal(t, []domain.FieldError{{Field: "email", Message: "Invalid email address"}},
			validation.FormatValidationErrors(err), addr)
	}
}

func TestDecodeFields(t *testing.T) {
	t.Run("Should keep well-typed fields and report the rest", func(t *testing.T) {
		var dst form
		errs, err := validation.DecodeFields([]byte(`{"name":42,"email":"nope","phone":["1"],"website":null,"message":"hello there"}`), &dst)

		require.NoError(t, err)
		assert.Equal(t, []domain.FieldError{
			{Field: "name", Message: "Expected string"},
			{Field: "phone", Message: "Expected string"},
		}, errs)
		assert.Equal(t, form{Email: "nope", Message: "hello there"}, dst)
	})

	t.Run("Should fail when the body is not an object", func(t *testing.T) {
		var dst form
		_, err := validation.DecodeFields([]byte(`[1,2]`), &dst)
		assert.Error(t, err)
	})

	t.Run("Should refuse a non-pointer destination", func(t *testing.T) {
		_, err := validation.DecodeFields([]byte(`{}`), form{})
		assert.Error(t, err)
	})
}

func TestMergeFieldErrors(t *testing.T) {
	typed := []domain.FieldError{{Field: "message", Message: "Expected string"}}
	rules := []domain.FieldError{
		{Field: "message", Message: "Message is required"},
		{Field: "email", Message: "Invalid email address"},
		{Field: "extra", Message: "Unknown"},
		{Field: "name", Message: "Name must be at least 2 characters"},
	}

	assert.Equal(t, []domain.FieldError{
		{Field: "name", Message: "Name must be at least 2 characters"},
		{Field: "email", Message: "Invalid email address"},
		{Field: "message", Message: "Expected string"},
		{Field: "extra", Message: "Unknown"},
	}, validation.MergeFieldErrors(&form{}, typed, rules))
}
