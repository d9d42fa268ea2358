package api

import (
	"context"

	apperrors "github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/identity"
)

// Signup starts the signup flow. The backend mails a one-time code and parks
// the pending account in the session cookie, so the same client must be used
// for verification.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/signup/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifySignupOTP completes signup. On success the backend establishes a
// session in the same response, carried home by the cookie jar.
func (c *Client) VerifySignupOTP(ctx context.Context, req OTPVerification) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/verify-signup-otp/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResendSignupOTP(ctx context.Context) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/resend-signup-otp/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/login/", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/logout/", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CurrentUser fetches the authenticated identity from /me/.
func (c *Client) CurrentUser(ctx context.Context) (*identity.Identity, error) {
	var envelope meEnvelope
	if err := c.getJSON(ctx, "/me/", &envelope); err != nil {
		return nil, err
	}
	if envelope.User == nil {
		return nil, &apperrors.AppError{
			Type:    apperrors.ErrorTypeServer,
			Code:    apperrors.ErrCodeDecodeFailed,
			Message: "user missing from /me/ response",
		}
	}
	return envelope.User, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/forgot-password/", ForgotPasswordRequest{Email: email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/reset-password/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
