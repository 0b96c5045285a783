package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seo-audit-backend/internal/domain"
	"seo-audit-backend/pkg/email"
	"seo-audit-backend/pkg/logger"
	"seo-audit-backend/pkg/metrics"
	"seo-audit-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type submissionUsecase struct {
	validate *validator.Validate
	composer *email.Composer
	mailer   email.Mailer
	log      *zap.Logger
}

// NewSubmissionUsecase wires the audit form handler. A nil logger falls back to logger.Log.
func NewSubmissionUsecase(validate *validator.Validate, composer *email.Composer, mailer email.Mailer, log *zap.Logger) domain.SubmissionUsecase {
	if log == nil {
		log = logger.Log
	}
	return &submissionUsecase{
		validate: validate,
		composer: composer,
		mailer:   mailer,
		log:      log,
	}
}

// Validate reports every invalid field, at most one entry each, in schema order.
func (uc *submissionUsecase) Validate(req *domain.SubmissionRequest) []domain.FieldError {
	errs, _ := uc.check(req)
	return errs
}

func (uc *submissionUsecase) check(req *domain.SubmissionRequest) ([]domain.FieldError, error) {
	if req == nil {
		req = &domain.SubmissionRequest{}
	}
	err := uc.validate.Struct(req)
	if err == nil {
		return nil, nil
	}

	errs := validation.FormatValidationErrors(err)
	if len(errs) == 0 {
		return nil, fmt.Errorf("failed to validate submission: %w", err)
	}
	return errs, nil
}

// Submit validates, composes and delivers req.
func (uc *submissionUsecase) Submit(ctx context.Context, req *domain.SubmissionRequest) (result domain.SubmissionResult) {
	log := uc.log.With(zap.Any("request_id", ctx.Value(domain.KeyRequestID)))

	defer func() {
		if r := recover(); r != nil {
			log.Error("Form submission error", zap.Any("panic", r), zap.Stack("stack"))
			result = domain.SubmissionFailed()
		}
		metrics.ObserveSubmission(result.Outcome.String())
	}()

	log.Info("Submission received", zap.String("relay", uc.mailer.Relay()))

	errs, err := uc.check(req)
	if err != nil {
		log.Error("Form submission error", zap.Error(err))
		return domain.SubmissionFailed()
	}
	if len(errs) > 0 {
		log.Info("Submission rejected", zap.Int("invalid_fields", len(errs)))
		return domain.SubmissionInvalid(errs)
	}

	if err := uc.deliver(ctx, req); err != nil {
		log.Error("Form submission error", zap.Error(err))
		return domain.SubmissionFailed()
	}

	return domain.SubmissionSucceeded()
}

func (uc *submissionUsecase) deliver(ctx context.Context, req *domain.SubmissionRequest) error {
	if !uc.mailer.IsConfigured() {
		return errors.New("mail relay is not configured")
	}

	msg, err := uc.composer.Compose(email.AuditRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
		Website:     req.Website,
		Message:     req.Message,
	})
	if err != nil {
		return fmt.Errorf("failed to compose audit email: %w", err)
	}

	start := time.Now()
	err = uc.mailer.Send(ctx, msg)
	metrics.ObserveDelivery(err, time.Since(start))
	if err != nil {
		return fmt.Errorf("failed to send audit email: %w", err)
	}
	return nil
}
