package usecase

import (
	"context"

	"seo-audit-backend/pkg/email"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	mailer email.Mailer
}

func NewHealthUsecase(mailer email.Mailer) HealthUsecase {
	return &healthUsecase{mailer: mailer}
}

// Check does not dial the relay; it only reports whether one is configured.
func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	relay := "unconfigured"
	if u.mailer != nil && u.mailer.IsConfigured() {
		relay = "configured"
	}
	return map[string]string{
		"status":     "ok",
		"mail_relay": relay,
	}
}
