package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/docuflow/docuflow-cli/internal/core/datamodel/status"
	"github.com/docuflow/docuflow-cli/internal/workflow"
)

var (
	updateComments string
	saveAsDocument bool
	textDocTitle   string
)

var myDocumentsCmd = &cobra.Command{
	Use:   "my-documents",
	Short: "Work with documents assigned to you",
}

var myDocumentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your assigned documents with personal status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctrl := workflow.NewEmployeeController(a.client, a.logger)
		if err := ctrl.Refresh(cmd.Context()); err != nil {
			return err
		}
		a.saveSession()

		docs := ctrl.Documents()
		if len(docs) == 0 {
			fmt.Println("No documents assigned to you yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILE\tYOUR STATUS\tACTIONS")
		for _, d := range docs {
			personal := d.PersonalStatus
			if personal == "" {
				personal = string(status.Pending)
			}
			actions := "-"
			if allowed := ctrl.AllowedUpdates(d.DocumentID); len(allowed) > 0 {
				actions = ""
				for i, s := range allowed {
					if i > 0 {
						actions += ", "
					}
					actions += string(s)
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.DocumentID, d.FileName, personal, actions)
		}
		return w.Flush()
	},
}

var myDocumentsUpdateCmd = &cobra.Command{
	Use:   "update <document-id> <in_progress|done|ignored>",
	Short: "Update your status on an assigned document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		ctrl := workflow.NewEmployeeController(a.client, a.logger)
		if err := ctrl.Refresh(cmd.Context()); err != nil {
			return err
		}

		newStatus := status.PersonalStatus(args[1])
		if err := ctrl.UpdateStatus(cmd.Context(), args[0], newStatus, updateComments); err != nil {
			return err
		}
		a.saveSession()

		fmt.Printf("Status updated to %s\n", newStatus)
		return nil
	},
}

var analyzeTextCmd = &cobra.Command{
	Use:   "analyze-text [file]",
	Short: "Analyze raw text, optionally saving it as a document",
	Long:  `Analyze raw text with the AI engine. Reads the given file, or stdin when no file is passed. With --save the text is stored as a document and analyzed server-side.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		var text []byte
		if len(args) == 1 {
			if text, err = os.ReadFile(args[0]); err != nil {
				return err
			}
		} else {
			if text, err = io.ReadAll(os.Stdin); err != nil {
				return err
			}
		}
		if len(text) == 0 {
			return fmt.Errorf("no text to analyze")
		}

		if saveAsDocument {
			title := textDocTitle
			if title == "" && len(args) == 1 {
				title = args[0]
			}
			if title == "" {
				title = "Text Document"
			}
			resp, err := a.client.CreateTextDocument(cmd.Context(), title, string(text), true)
			if err != nil {
				return err
			}
			a.saveSession()
			fmt.Printf("%s (ID: %s)\n", resp.Message, resp.DocumentID)
			return nil
		}

		analysis, err := a.client.AnalyzeText(cmd.Context(), string(text))
		if err != nil {
			return err
		}
		a.saveSession()

		fmt.Println("Analysis:")
		printAnalysis(analysis)
		return nil
	},
}

func init() {
	myDocumentsUpdateCmd.Flags().StringVar(&updateComments, "comments", "", "comments to attach to the update")
	analyzeTextCmd.Flags().BoolVar(&saveAsDocument, "save", false, "store the text as a document")
	analyzeTextCmd.Flags().StringVar(&textDocTitle, "title", "", "title for the stored document")

	myDocumentsCmd.AddCommand(myDocumentsListCmd)
	myDocumentsCmd.AddCommand(myDocumentsUpdateCmd)
}
