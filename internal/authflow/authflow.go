// Package authflow holds the modal-scoped state machines behind login,
// signup and password reset. Each flow tracks which step the user is on and
// refuses calls that are not legal there; a failed call always leaves the
// flow where it was.
package authflow

import (
	"context"
	"fmt"

	apperrors "github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/identity"
)

// AuthAPI is the slice of the API client the flows drive.
type AuthAPI interface {
	Login(ctx context.Context, creds api.Credentials) (*api.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (*api.AuthResponse, error)
	ResetPassword(ctx context.Context, req api.ResetPasswordRequest) (*api.AuthResponse, error)
	Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error)
	VerifySignupOTP(ctx context.Context, req api.OTPVerification) (*api.AuthResponse, error)
	ResendSignupOTP(ctx context.Context) (*api.AuthResponse, error)
}

// SessionSink receives the identity once a flow establishes a session.
type SessionSink interface {
	Established(ident *identity.Identity)
}

type State string

const (
	StateCredentialsEntry State = "credentials-entry"
	StateSignupEntry      State = "signup-entry"
	StateEmailEntry       State = "email-entry"
	StateOTPEntry         State = "otp-entry"
	StateClosed           State = "closed"
)

func illegalState(action string, s State) *apperrors.AppError {
	return apperrors.NewValidationError(
		fmt.Sprintf("%s is not available in the %s step", action, s),
		apperrors.ErrCodeIllegalState,
	)
}
