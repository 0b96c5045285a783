package domain

import "encoding/json"

const (
	MessageSubmitted       = "Form submitted successfully! You will receive the audit report within 1-7 days."
	MessageValidationError = "Validation error"
	MessageDeliveryFailure = "Failed to submit form. Please try again later."
)

// Outcome discriminates the three shapes of SubmissionResult.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeValidationFailure
	OutcomeDeliveryFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationFailure:
		return "validation_failure"
	case OutcomeDeliveryFailure:
		return "delivery_failure"
	default:
		return "unknown"
	}
}

// FieldError is a single schema violation. Field is the dotted JSON path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type SubmissionResult struct {
	Outcome Outcome      `json:"-"`
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func SubmissionSucceeded() SubmissionResult {
	return SubmissionResult{
		Outcome: OutcomeSuccess,
		Success: true,
		Message: MessageSubmitted,
	}
}

func SubmissionInvalid(errs []FieldError) SubmissionResult {
	return SubmissionResult{
		Outcome: OutcomeValidationFailure,
		Message: MessageValidationError,
		Errors:  errs,
	}
}

func SubmissionFailed() SubmissionResult {
	return SubmissionResult{
		Outcome: OutcomeDeliveryFailure,
		Message: MessageDeliveryFailure,
	}
}

// UnmarshalJSON restores Outcome, which is not part of the wire format.
func (r *SubmissionResult) UnmarshalJSON(data []byte) error {
	type wire SubmissionResult
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = SubmissionResult(w)
	switch {
	case r.Success:
		r.Outcome = OutcomeSuccess
	case len(r.Errors) > 0:
		r.Outcome = OutcomeValidationFailure
	default:
		r.Outcome = OutcomeDeliveryFailure
	}
	return nil
}
