package domain

import "context"

// SubmissionRequest is one audit request as collected by the form.
// Field order is significant: validation errors are reported in this order.
type SubmissionRequest struct {
	Name        string `json:"name" validate:"min=2"`
	Email       string `json:"email" validate:"email,email_domain"`
	Phone       string `json:"phone" validate:"min=10"`
	CountryCode string `json:"countryCode"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Message     string `json:"message" validate:"min=10"`
}

// SubmissionUsecase validates a request and relays it to the mail relay.
type SubmissionUsecase interface {
	// Submit never returns an error; every failure is folded into the result.
	Submit(ctx context.Context, req *SubmissionRequest) SubmissionResult
	// Validate checks the request against the schema without sending anything.
	Validate(req *SubmissionRequest) []FieldError
}
