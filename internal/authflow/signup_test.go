package authflow_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/internal/authflow"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/identity"
)

var _ = Describe("SignupFlow", func() {
	var (
		mockAPI *mockAuthAPI
		sink    *mockSessionSink
		flow    *authflow.SignupFlow
		ctx     context.Context
		form    authflow.SignupForm
	)

	BeforeEach(func() {
		mockAPI = &mockAuthAPI{
			signupPendingEmail: "ana@acme.com",
			verifiedUser:       &identity.Identity{Email: "ana@acme.com", IsAdmin: true},
		}
		sink = &mockSessionSink{}
		flow = authflow.NewSignupFlow(mockAPI, sink, testLogger())
		ctx = context.Background()
		form = authflow.SignupForm{
			Name:        "Ana",
			Email:       "ana@acme.com",
			Password:    "secret123",
			CompanyName: "Acme",
		}
	})

	Describe("Submit", func() {
		It("should move to otp-entry and remember the pending email", func() {
			Expect(flow.Submit(ctx, form)).To(Succeed())

			Expect(flow.State()).To(Equal(authflow.StateOTPEntry))
			Expect(flow.Email()).To(Equal("ana@acme.com"))
			Expect(mockAPI.lastSignup.CompanyName).To(Equal("Acme"))
		})

		It("should fall back to the form email when the response omits it", func() {
			mockAPI.signupPendingEmail = ""

			Expect(flow.Submit(ctx, form)).To(Succeed())
			Expect(flow.Email()).To(Equal("ana@acme.com"))
		})

		It("should block an incomplete form before any request is sent", func() {
			form.CompanyName = ""

			err := flow.Submit(ctx, form)

			Expect(err).To(HaveOccurred())
			Expect(apperrors.IsKind(err, apperrors.ErrorTypeValidation)).To(BeTrue())
			Expect(mockAPI.signupCalls).To(BeZero())
			Expect(flow.State()).To(Equal(authflow.StateSignupEntry))
		})

		It("should stay on signup-entry when the backend rejects the signup", func() {
			mockAPI.signupError = apperrors.FromStatus(409, "Email already registered")

			err := flow.Submit(ctx, form)

			Expect(err).To(HaveOccurred())
			Expect(apperrors.IsKind(err, apperrors.ErrorTypeConflict)).To(BeTrue())
			Expect(flow.State()).To(Equal(authflow.StateSignupEntry))
		})
	})

	Describe("VerifyOTP", func() {
		BeforeEach(func() {
			Expect(flow.Submit(ctx, form)).To(Succeed())
		})

		It("should close the flow and establish the session", func() {
			ident, err := flow.VerifyOTP(ctx, "123456")

			Expect(err).ToNot(HaveOccurred())
			Expect(ident.Email).To(Equal("ana@acme.com"))
			Expect(flow.State()).To(Equal(authflow.StateClosed))
			Expect(sink.established).To(HaveLen(1))
			Expect(mockAPI.lastVerification.Email).To(Equal("ana@acme.com"))
			Expect(mockAPI.lastVerification.OTP).To(Equal("123456"))
		})

		It("should reject a code that is not six digits without a request", func() {
			_, err := flow.VerifyOTP(ctx, "1234")

			Expect(err).To(HaveOccurred())
			Expect(mockAPI.verifyCalls).To(BeZero())
			Expect(flow.State()).To(Equal(authflow.StateOTPEntry))
		})

		It("should stay on otp-entry when the code is wrong server-side", func() {
			mockAPI.verifyError = apperrors.FromStatus(400, "Invalid OTP")

			_, err := flow.VerifyOTP(ctx, "000000")

			Expect(err).To(HaveOccurred())
			Expect(flow.State()).To(Equal(authflow.StateOTPEntry))
			Expect(sink.established).To(BeEmpty())
		})

		It("should refuse verification before submit", func() {
			fresh := authflow.NewSignupFlow(mockAPI, sink, testLogger())

			_, err := fresh.VerifyOTP(ctx, "123456")

			Expect(err).To(HaveOccurred())
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeIllegalState))
		})
	})

	Describe("Resend", func() {
		It("should request a fresh code and stay on otp-entry", func() {
			Expect(flow.Submit(ctx, form)).To(Succeed())

			Expect(flow.Resend(ctx)).To(Succeed())

			Expect(mockAPI.resendCalls).To(Equal(1))
			Expect(flow.State()).To(Equal(authflow.StateOTPEntry))
		})

		It("should refuse to resend outside otp-entry", func() {
			err := flow.Resend(ctx)

			Expect(err).To(HaveOccurred())
			Expect(mockAPI.resendCalls).To(BeZero())
		})
	})
})
