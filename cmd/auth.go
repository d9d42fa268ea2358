package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow-cli/internal/authflow"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		email := loginEmail
		if email == "" {
			if email, err = a.prompt("Email: "); err != nil {
				return err
			}
		}
		password, err := a.prompt("Password: ")
		if err != nil {
			return err
		}

		flow := authflow.NewLoginFlow(a.client, a.sessions, a.logger)
		ident, err := flow.Submit(cmd.Context(), email, password)
		if err != nil {
			return err
		}
		a.saveSession()

		fmt.Printf("Logged in as %s (%s)\n", ident.Name, ident.Role())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the local session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if _, err := a.client.Logout(cmd.Context()); err != nil {
			return err
		}
		a.sessions.Invalidate()
		if err := a.store.Clear(); err != nil {
			a.logger.Warn("failed to clear session file", "error", err)
		}

		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ident, err := a.sessions.Identity(cmd.Context())
		if err != nil {
			return err
		}
		a.saveSession()

		fmt.Printf("Name:     %s\n", ident.Name)
		fmt.Printf("Email:    %s\n", ident.Email)
		fmt.Printf("Company:  %s\n", ident.CompanyName)
		fmt.Printf("Role:     %s\n", ident.Role())
		if ident.DepartmentName != "" {
			fmt.Printf("Department: %s\n", ident.DepartmentName)
		}
		if exp, ok := a.store.SessionExpiry(); ok {
			fmt.Printf("Session expires: %s\n", exp.Format(time.RFC1123))
		}
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset a forgotten password with an emailed code",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		flow := authflow.NewLoginFlow(a.client, a.sessions, a.logger)
		if err := flow.ForgotPassword(); err != nil {
			return err
		}

		email, err := a.prompt("Email: ")
		if err != nil {
			return err
		}
		if err := flow.SubmitEmail(cmd.Context(), email); err != nil {
			return err
		}
		a.saveSession()
		fmt.Println("If an account exists for that address, a code has been sent.")

		otp, err := a.prompt("Code: ")
		if err != nil {
			return err
		}
		newPassword, err := a.prompt("New password: ")
		if err != nil {
			return err
		}

		if err := flow.SubmitReset(cmd.Context(), otp, newPassword); err != nil {
			return err
		}
		fmt.Println("Password reset. You can now log in.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
}
