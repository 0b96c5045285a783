// Package form holds the client-side state of the audit form: field values,
// per-field errors, the country code picker, and the single in-flight
// submission guard.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"seo-audit-backend/internal/domain"
)

// NotificationDuration is how long a notification stays up before it dismisses itself.
const NotificationDuration = 5 * time.Second

// ErrSubmissionInFlight is returned by Submit while another submission is pending.
var ErrSubmissionInFlight = errors.New("form: submission already in flight")

// Submitter hands a request to the submission handler. A non-nil error means
// no result was obtained at all, e.g. the network call failed.
type Submitter interface {
	Submit(ctx context.Context, req *domain.SubmissionRequest) (domain.SubmissionResult, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, req *domain.SubmissionRequest) (domain.SubmissionResult, error)

func (f SubmitterFunc) Submit(ctx context.Context, req *domain.SubmissionRequest) (domain.SubmissionResult, error) {
	return f(ctx, req)
}

// Local submits straight to an in-process usecase.
func Local(uc domain.SubmissionUsecase) Submitter {
	return SubmitterFunc(func(ctx context.Context, req *domain.SubmissionRequest) (domain.SubmissionResult, error) {
		return uc.Submit(ctx, req), nil
	})
}

type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
)

func (k NotificationKind) String() string {
	if k == NotifySuccess {
		return "success"
	}
	return "error"
}

type Notification struct {
	Kind     NotificationKind
	Message  string
	Duration time.Duration
}

type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateIdleWithErrors
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateIdleWithErrors:
		return "idle-with-errors"
	default:
		return "idle"
	}
}

type Controller struct {
	submitter Submitter
	notifier  Notifier

	mu           sync.Mutex
	fields       domain.SubmissionRequest
	errors       map[string]string
	dropdownOpen bool
	pending      bool
}

func NewController(submitter Submitter, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	return &Controller{
		submitter: submitter,
		notifier:  notifier,
		fields:    defaultFields(),
		errors:    map[string]string{},
	}
}

func defaultFields() domain.SubmissionRequest {
	return domain.SubmissionRequest{CountryCode: domain.DefaultCountryCode}
}

// Fields returns a copy of the current values.
func (c *Controller) Fields() domain.SubmissionRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// Errors returns a copy of the displayed field errors.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

func (c *Controller) DropdownOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropdownOpen
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.pending:
		return StateSubmitting
	case len(c.errors) > 0:
		return StateIdleWithErrors
	default:
		return StateIdle
	}
}

// SetField updates the value of the named field (its JSON name) and clears
// any error shown for it.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case "name":
		c.fields.Name = value
	case "email":
		c.fields.Email = value
	case "phone":
		c.fields.Phone = value
	case "countryCode":
		c.fields.CountryCode = value
	case "website":
		c.fields.Website = value
	case "message":
		c.fields.Message = value
	default:
		return fmt.Errorf("form: unknown field %q", name)
	}
	delete(c.errors, name)
	return nil
}

func (c *Controller) ToggleDropdown() {
	c.mu.Lock()
	c.dropdownOpen = !c.dropdownOpen
	c.mu.Unlock()
}

func (c *Controller) CloseDropdown() {
	c.mu.Lock()
	c.dropdownOpen = false
	c.mu.Unlock()
}

// SelectCountryCode picks a dialing code and closes the picker.
func (c *Controller) SelectCountryCode(code string) {
	c.mu.Lock()
	c.fields.CountryCode = code
	c.dropdownOpen = false
	delete(c.errors, "countryCode")
	c.mu.Unlock()
}

// Submit sends the current fields exactly once. While it runs, further calls
// fail with ErrSubmissionInFlight. The returned result is also reflected in
// the controller's state and announced through the notifier.
func (c *Controller) Submit(ctx context.Context) (domain.SubmissionResult, error) {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return domain.SubmissionResult{}, ErrSubmissionInFlight
	}
	c.pending = true
	c.errors = map[string]string{}
	req := c.fields
	c.mu.Unlock()

	result, err := c.submitter.Submit(ctx, &req)
	if err != nil {
		result = domain.SubmissionFailed()
	}

	c.mu.Lock()
	switch result.Outcome {
	case domain.OutcomeSuccess:
		c.fields = defaultFields()
	case domain.OutcomeValidationFailure:
		for _, fe := range result.Errors {
			c.errors[fe.Field] = fe.Message
		}
	}
	c.pending = false
	c.mu.Unlock()

	c.notifier.Notify(notificationFor(result))
	return result, err
}

func notificationFor(result domain.SubmissionResult) Notification {
	n := Notification{Kind: NotifyError, Message: result.Message, Duration: NotificationDuration}
	if result.Success {
		n.Kind = NotifySuccess
	}
	if n.Message == "" {
		n.Message = domain.MessageDeliveryFailure
	}
	return n
}
