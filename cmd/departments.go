package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/core/common/validation"
)

var (
	departmentDescription string
	employeeDepartment    string
)

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "Manage departments (admin)",
}

var departmentsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		v := validation.NewValidator()
		v.Field("department_name", args[0]).Required().MaxLength(100)
		if err := v.Validate(); err != nil {
			return err
		}

		resp, err := a.client.CreateDepartment(cmd.Context(), api.CreateDepartmentRequest{
			DepartmentName: args[0],
			Description:    departmentDescription,
		})
		if err != nil {
			return err
		}
		a.saveSession()

		fmt.Printf("Department %q created (ID: %s)\n", args[0], resp.DepartmentID)
		return nil
	},
}

var departmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List departments with their members",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		list, err := a.client.Departments(cmd.Context())
		if err != nil {
			return err
		}
		a.saveSession()

		if len(list.Departments) == 0 {
			fmt.Println("No departments yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMPLOYEES\tDESCRIPTION")
		for _, d := range list.Departments {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				d.DepartmentID, d.DepartmentName, d.EmployeeCount, d.Description)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		for _, d := range list.Departments {
			if len(d.Employees) == 0 {
				continue
			}
			fmt.Printf("\n%s:\n", d.DepartmentName)
			for _, e := range d.Employees {
				fmt.Printf("  %s <%s>\n", e.Name, e.Email)
			}
		}
		return nil
	},
}

var departmentsDeleteCmd = &cobra.Command{
	Use:   "delete <department-id>",
	Short: "Delete a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.client.DeleteDepartment(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.saveSession()

		fmt.Println("Department deleted")
		return nil
	},
}

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Manage employees (admin)",
}

var employeesAddCmd = &cobra.Command{
	Use:   "add <name> <email>",
	Short: "Add an employee; the backend mails their initial password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		v := validation.NewValidator()
		v.Field("name", args[0]).Required().MaxLength(100)
		v.Field("email", args[1]).Required().Email()
		v.Field("department_name", employeeDepartment).Required()
		if err := v.Validate(); err != nil {
			return err
		}

		resp, err := a.client.AddEmployee(cmd.Context(), api.AddEmployeeRequest{
			Name:           args[0],
			Email:          args[1],
			DepartmentName: employeeDepartment,
		})
		if err != nil {
			return err
		}
		a.saveSession()

		fmt.Println(resp.Message)
		return nil
	},
}

var employeesDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Remove an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.client.DeleteEmployee(cmd.Context(), args[0]); err != nil {
			return err
		}
		a.saveSession()

		fmt.Println("Employee removed")
		return nil
	},
}

func init() {
	departmentsCreateCmd.Flags().StringVar(&departmentDescription, "description", "", "department description")
	employeesAddCmd.Flags().StringVar(&employeeDepartment, "department", "", "department name (required)")

	departmentsCmd.AddCommand(departmentsCreateCmd)
	departmentsCmd.AddCommand(departmentsListCmd)
	departmentsCmd.AddCommand(departmentsDeleteCmd)

	employeesCmd.AddCommand(employeesAddCmd)
	employeesCmd.AddCommand(employeesDeleteCmd)
}
