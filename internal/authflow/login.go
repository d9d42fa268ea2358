package authflow

import (
	"context"
	"log/slog"

	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/core/common/validation"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/identity"
)

// LoginFlow drives login with a forgot-password branch:
//
//	credentials-entry -> closed                        (Submit ok)
//	credentials-entry -> email-entry                   (ForgotPassword)
//	email-entry       -> otp-entry                     (SubmitEmail ok)
//	otp-entry         -> closed                        (SubmitReset ok)
//
// Any failure keeps the current state and returns the typed error.
type LoginFlow struct {
	api      AuthAPI
	sessions SessionSink
	logger   *slog.Logger

	state      State
	resetEmail string
}

func NewLoginFlow(authAPI AuthAPI, sessions SessionSink, logger *slog.Logger) *LoginFlow {
	return &LoginFlow{
		api:      authAPI,
		sessions: sessions,
		logger:   logger,
		state:    StateCredentialsEntry,
	}
}

func (f *LoginFlow) State() State {
	return f.state
}

// Submit attempts login. Preflight validation blocks the request entirely when
// required fields are missing.
func (f *LoginFlow) Submit(ctx context.Context, email, password string) (*identity.Identity, error) {
	if f.state != StateCredentialsEntry {
		return nil, illegalState("login", f.state)
	}

	if err := validation.ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	resp, err := f.api.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		f.logger.Debug("login failed", "email", email, "error", err)
		return nil, err
	}

	f.state = StateClosed
	if f.sessions != nil && resp.User != nil {
		f.sessions.Established(resp.User)
	}
	return resp.User, nil
}

// ForgotPassword enters the reset branch. Local transition, no request.
func (f *LoginFlow) ForgotPassword() error {
	if f.state != StateCredentialsEntry {
		return illegalState("forgot-password", f.state)
	}
	f.state = StateEmailEntry
	return nil
}

// SubmitEmail asks the backend to mail a reset code.
func (f *LoginFlow) SubmitEmail(ctx context.Context, email string) error {
	if f.state != StateEmailEntry {
		return illegalState("forgot-password email", f.state)
	}

	v := validation.NewValidator()
	v.Field("email", email).Required().Email()
	if err := v.Validate(); err != nil {
		return err
	}

	if _, err := f.api.ForgotPassword(ctx, email); err != nil {
		return err
	}

	f.resetEmail = email
	f.state = StateOTPEntry
	return nil
}

// SubmitReset completes the reset with the mailed code and a new password.
func (f *LoginFlow) SubmitReset(ctx context.Context, otp, newPassword string) error {
	if f.state != StateOTPEntry {
		return illegalState("reset-password", f.state)
	}

	if err := validation.ValidateOTP(otp); err != nil {
		return err
	}
	v := validation.NewValidator()
	v.Field("new_password", newPassword).Required().MinLength(6)
	if err := v.Validate(); err != nil {
		return err
	}

	req := api.ResetPasswordRequest{
		Email:       f.resetEmail,
		OTP:         otp,
		NewPassword: newPassword,
	}
	if _, err := f.api.ResetPassword(ctx, req); err != nil {
		return err
	}

	f.state = StateClosed
	return nil
}

// Back returns from the reset branch to credentials entry, dropping branch
// state. Mirrors the modal's "back to login" link.
func (f *LoginFlow) Back() error {
	switch f.state {
	case StateEmailEntry, StateOTPEntry:
		f.state = StateCredentialsEntry
		f.resetEmail = ""
		return nil
	default:
		return illegalState("back", f.state)
	}
}
