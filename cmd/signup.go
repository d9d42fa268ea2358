package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow-cli/internal/authflow"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a company account (admin) with email verification",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		var form authflow.SignupForm
		if form.Name, err = a.prompt("Name: "); err != nil {
			return err
		}
		if form.Email, err = a.prompt("Email: "); err != nil {
			return err
		}
		if form.Password, err = a.prompt("Password: "); err != nil {
			return err
		}
		if form.CompanyName, err = a.prompt("Company name: "); err != nil {
			return err
		}

		flow := authflow.NewSignupFlow(a.client, a.sessions, a.logger)
		if err := flow.Submit(cmd.Context(), form); err != nil {
			return err
		}
		// the pending signup lives in the session cookie; keep it
		a.saveSession()

		fmt.Printf("A verification code was sent to %s.\n", flow.Email())

		// the server locks the pending signup after 3 bad codes, so stop
		// prompting past that point
		failures := 0
		for flow.State() == authflow.StateOTPEntry {
			input, err := a.prompt("Code (or 'r' to resend): ")
			if err != nil {
				return err
			}

			if strings.EqualFold(input, "r") {
				if err := flow.Resend(cmd.Context()); err != nil {
					fmt.Println("Failed to resend code:", err)
					continue
				}
				a.saveSession()
				failures = 0
				fmt.Println("A new code has been sent.")
				continue
			}

			ident, err := flow.VerifyOTP(cmd.Context(), input)
			if err != nil {
				failures++
				if failures >= 3 {
					return err
				}
				fmt.Println("Verification failed:", err)
				continue
			}
			a.saveSession()
			fmt.Printf("Account created. Logged in as %s (%s)\n", ident.Name, ident.Role())
		}
		return nil
	},
}
