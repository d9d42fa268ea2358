package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow-cli/internal/core/datamodel/document"
	"github.com/docuflow/docuflow-cli/internal/workflow"
)

var assignDepartments []string

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Manage company documents (admin)",
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all company documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctrl := workflow.NewAdminController(a.client, a.logger)
		if err := ctrl.Refresh(cmd.Context()); err != nil {
			return err
		}
		a.saveSession()

		docs := ctrl.Documents()
		if len(docs) == 0 {
			fmt.Println("No documents yet. Upload one to get started.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILE\tSTATUS\tTYPE\tUPLOADED")
		for _, d := range docs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				d.DocumentID,
				d.FileName,
				d.ProcessingStatus,
				d.ContentType,
				d.Timestamp.Format("2006-01-02"),
			)
		}
		return w.Flush()
	},
}

var documentsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		ctrl := workflow.NewAdminController(a.client, a.logger)
		resp, err := ctrl.Upload(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		a.saveSession()

		fmt.Printf("File uploaded successfully (ID: %s)\n", resp.DocumentID)
		return nil
	},
}

var documentsViewCmd = &cobra.Command{
	Use:   "view <document-id>",
	Short: "Show a document's details and analysis",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctrl := workflow.NewAdminController(a.client, a.logger)
		if err := ctrl.Refresh(cmd.Context()); err != nil {
			return err
		}
		a.saveSession()

		var doc *document.Document
		for _, d := range ctrl.Documents() {
			if d.DocumentID == args[0] {
				doc = &d
				break
			}
		}
		if doc == nil {
			return fmt.Errorf("document %s not found", args[0])
		}

		printDocument(doc)

		if doc.ProcessingStatus == document.StatusAssigned {
			statuses, err := ctrl.EmployeeStatuses(cmd.Context(), doc.DocumentID)
			if err != nil {
				return err
			}
			fmt.Println("\nEmployee status:")
			if len(statuses) == 0 {
				fmt.Println("  no updates from employees yet")
			}
			for _, s := range statuses {
				name := s.EmployeeName
				if name == "" {
					name = s.EmployeeEmail
				}
				line := fmt.Sprintf("  %s (%s): %s", name, s.DepartmentName, s.PersonalStatus)
				if s.Comments != "" {
					line += " - " + s.Comments
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

var documentsAnalyzeCmd = &cobra.Command{
	Use:   "analyze <document-id>",
	Short: "Run AI analysis on an uploaded document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctrl := workflow.NewAdminController(a.client, a.logger)
		if err := ctrl.Refresh(cmd.Context()); err != nil {
			return err
		}

		resp, err := ctrl.Analyze(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		a.saveSession()

		fmt.Println("Document analyzed successfully")
		printAnalysis(&resp.Analysis)
		return nil
	},
}

var documentsAssignCmd = &cobra.Command{
	Use:   "assign <document-id>",
	Short: "Assign an analyzed document to departments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctrl := workflow.NewAdminController(a.client, a.logger)
		if err := ctrl.Refresh(cmd.Context()); err != nil {
			return err
		}

		if err := ctrl.SelectForAssignment(cmd.Context(), args[0]); err != nil {
			return err
		}

		if len(assignDepartments) == 0 {
			fmt.Println("Available departments:")
			for _, name := range ctrl.DepartmentChoices() {
				fmt.Println("  -", name)
			}
			return fmt.Errorf("please select at least one department with --departments")
		}

		for _, name := range assignDepartments {
			ctrl.ToggleDepartment(strings.TrimSpace(name))
		}

		resp, err := ctrl.SubmitAssignment(cmd.Context())
		if err != nil {
			return err
		}
		a.saveSession()

		fmt.Printf("Document assigned to %d department(s)\n", len(resp.Departments))
		if len(resp.AssignedTo) > 0 {
			fmt.Println("Notified:", strings.Join(resp.AssignedTo, ", "))
		}
		return nil
	},
}

var documentsStatusCmd = &cobra.Command{
	Use:   "status <document-id> <completed|ignored|deleted>",
	Short: "Set a document's processing status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctrl := workflow.NewAdminController(a.client, a.logger)
		if err := ctrl.Refresh(cmd.Context()); err != nil {
			return err
		}

		if err := ctrl.SetStatus(cmd.Context(), args[0], document.ProcessingStatus(args[1])); err != nil {
			return err
		}
		a.saveSession()

		fmt.Printf("Document status updated to %s\n", args[1])
		return nil
	},
}

func printDocument(doc *document.Document) {
	fmt.Println(doc.FileName)
	fmt.Println("  ID:        ", doc.DocumentID)
	fmt.Println("  Status:    ", doc.ProcessingStatus)
	fmt.Println("  Type:      ", doc.ContentType)
	fmt.Println("  Uploaded:  ", doc.Timestamp.Format(time.RFC1123))
	fmt.Println("  Uploader:  ", doc.UploadedBy)
	if doc.Summary != "" {
		fmt.Println("  Summary:   ", doc.Summary)
	}
	if doc.DocumentType != "" {
		fmt.Println("  Doc type:  ", doc.DocumentType)
	}
	if doc.UrgencyScore != nil {
		fmt.Printf("  Urgency:    %.1f/10\n", *doc.UrgencyScore)
	}
	if doc.ImportanceScore != nil {
		fmt.Printf("  Importance: %.1f/10\n", *doc.ImportanceScore)
	}
	if doc.Confidence != nil {
		fmt.Printf("  Confidence: %.0f%%\n", *doc.Confidence*100)
	}
	if len(doc.KeyFindings) > 0 {
		fmt.Println("  Key findings:")
		for _, f := range doc.KeyFindings {
			fmt.Println("    -", f)
		}
	}
	if len(doc.DepartmentsResponsible) > 0 {
		fmt.Println("  Suggested departments:", strings.Join(doc.DepartmentsResponsible, ", "))
	}
	if len(doc.DepartmentsAssigned) > 0 {
		fmt.Println("  Assigned departments: ", strings.Join(doc.DepartmentsAssigned, ", "))
	}
}

func printAnalysis(an *document.Analysis) {
	fmt.Println("  Summary:   ", an.Summary)
	fmt.Println("  Doc type:  ", an.DocumentType)
	fmt.Printf("  Urgency:    %.1f/10\n", an.UrgencyScore)
	fmt.Printf("  Importance: %.1f/10\n", an.ImportanceScore)
	fmt.Printf("  Confidence: %.0f%%\n", an.Confidence*100)
	if len(an.KeyFindings) > 0 {
		fmt.Println("  Key findings:")
		for _, f := range an.KeyFindings {
			fmt.Println("    -", f)
		}
	}
	if len(an.DepartmentsResponsible) > 0 {
		fmt.Println("  Suggested departments:", strings.Join(an.DepartmentsResponsible, ", "))
	}
}

func init() {
	documentsAssignCmd.Flags().StringSliceVar(&assignDepartments, "departments", nil, "departments to assign, comma separated")

	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsUploadCmd)
	documentsCmd.AddCommand(documentsViewCmd)
	documentsCmd.AddCommand(documentsAnalyzeCmd)
	documentsCmd.AddCommand(documentsAssignCmd)
	documentsCmd.AddCommand(documentsStatusCmd)
}
