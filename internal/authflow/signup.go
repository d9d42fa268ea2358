package authflow

import (
	"context"
	"log/slog"

	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/core/common/validation"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/identity"
)

// SignupFlow drives the two-step signup:
//
//	signup-entry -> otp-entry   (Submit ok)
//	otp-entry    -> closed      (VerifyOTP ok, session established)
//
// Resend is side-effect only and stays in otp-entry. Failures keep state.
type SignupFlow struct {
	api      AuthAPI
	sessions SessionSink
	logger   *slog.Logger

	state State
	email string
}

func NewSignupFlow(authAPI AuthAPI, sessions SessionSink, logger *slog.Logger) *SignupFlow {
	return &SignupFlow{
		api:      authAPI,
		sessions: sessions,
		logger:   logger,
		state:    StateSignupEntry,
	}
}

func (f *SignupFlow) State() State {
	return f.state
}

// Email returns the address the pending code was sent to.
func (f *SignupFlow) Email() string {
	return f.email
}

type SignupForm struct {
	Name        string
	Email       string
	Password    string
	CompanyName string
}

// Submit starts signup; the backend mails an OTP on success.
func (f *SignupFlow) Submit(ctx context.Context, form SignupForm) error {
	if f.state != StateSignupEntry {
		return illegalState("signup", f.state)
	}

	if err := validation.ValidateSignup(form.Name, form.Email, form.Password, form.CompanyName); err != nil {
		return err
	}

	req := api.SignupRequest{
		Name:        form.Name,
		Email:       form.Email,
		Password:    form.Password,
		CompanyName: form.CompanyName,
	}
	resp, err := f.api.Signup(ctx, req)
	if err != nil {
		f.logger.Debug("signup failed", "email", form.Email, "error", err)
		return err
	}

	f.email = resp.Email
	if f.email == "" {
		f.email = form.Email
	}
	f.state = StateOTPEntry
	return nil
}

// VerifyOTP completes signup. On success the session is established and the
// flow closes.
func (f *SignupFlow) VerifyOTP(ctx context.Context, otp string) (*identity.Identity, error) {
	if f.state != StateOTPEntry {
		return nil, illegalState("verify-otp", f.state)
	}

	if err := validation.ValidateOTP(otp); err != nil {
		return nil, err
	}

	resp, err := f.api.VerifySignupOTP(ctx, api.OTPVerification{Email: f.email, OTP: otp})
	if err != nil {
		f.logger.Debug("otp verification failed", "email", f.email, "error", err)
		return nil, err
	}

	f.state = StateClosed
	if f.sessions != nil && resp.User != nil {
		f.sessions.Established(resp.User)
	}
	return resp.User, nil
}

// Resend asks for a fresh code. The flow stays in otp-entry either way.
func (f *SignupFlow) Resend(ctx context.Context) error {
	if f.state != StateOTPEntry {
		return illegalState("resend-otp", f.state)
	}

	_, err := f.api.ResendSignupOTP(ctx)
	return err
}
