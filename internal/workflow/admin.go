// Package workflow holds the view controllers for the document screens. Each
// controller owns its local state, issues calls through the API binding layer
// and re-renders from the latest server response; consistency after a
// mutation comes from a full list refetch, never from local patching.
package workflow

import (
	"context"
	"io"
	"log/slog"

	apperrors "github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/document"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/status"
)

type Tab string

const (
	TabUpload Tab = "upload"
	TabList   Tab = "list"
	TabAssign Tab = "assign"
)

// AdminAPI is the slice of the API client the admin controller drives.
type AdminAPI interface {
	Documents(ctx context.Context) ([]document.Document, error)
	UploadFile(ctx context.Context, fileName string, file io.Reader) (*api.UploadResponse, error)
	AnalyzeDocument(ctx context.Context, documentID string) (*api.AnalyzeResponse, error)
	Departments(ctx context.Context) (*api.DepartmentList, error)
	AssignDocument(ctx context.Context, documentID string, departments []string) (*api.AssignResponse, error)
	UpdateDocumentStatus(ctx context.Context, documentID string, newStatus document.ProcessingStatus) (*api.MessageResponse, error)
	EmployeeDocumentStatus(ctx context.Context, documentID string) (*api.EmployeeStatusReport, error)
}

// AdminController is the admin document screen: an upload/list/assign tab
// strip where assign is only reachable by selecting an analyzed document.
type AdminController struct {
	api    AdminAPI
	logger *slog.Logger

	tab         Tab
	documents   []document.Document
	selected    *document.Document
	departments []string
	chosen      map[string]bool
}

func NewAdminController(adminAPI AdminAPI, logger *slog.Logger) *AdminController {
	return &AdminController{
		api:    adminAPI,
		logger: logger,
		tab:    TabList,
		chosen: make(map[string]bool),
	}
}

func (c *AdminController) ActiveTab() Tab {
	return c.tab
}

func (c *AdminController) Documents() []document.Document {
	return c.documents
}

func (c *AdminController) Selected() *document.Document {
	return c.selected
}

// Refresh refetches the document list from the server.
func (c *AdminController) Refresh(ctx context.Context) error {
	docs, err := c.api.Documents(ctx)
	if err != nil {
		return err
	}
	c.documents = docs
	return nil
}

func (c *AdminController) OpenUpload() {
	c.tab = TabUpload
}

func (c *AdminController) OpenList() {
	c.tab = TabList
}

func (c *AdminController) find(documentID string) *document.Document {
	for i := range c.documents {
		if c.documents[i].DocumentID == documentID {
			return &c.documents[i]
		}
	}
	return nil
}

// Upload sends the file, refetches the list and lands on the list tab, so the
// new document is visible immediately.
func (c *AdminController) Upload(ctx context.Context, fileName string, file io.Reader) (*api.UploadResponse, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("please select a file", apperrors.ErrCodeMissingFile)
	}

	resp, err := c.api.UploadFile(ctx, fileName, file)
	if err != nil {
		return nil, err
	}

	c.logger.Info("file uploaded", "document_id", resp.DocumentID, "file_name", fileName)

	if err := c.Refresh(ctx); err != nil {
		return resp, err
	}
	c.tab = TabList
	return resp, nil
}

// Analyze requests AI analysis for a document that has not been analyzed or
// assigned yet, then refetches the list.
func (c *AdminController) Analyze(ctx context.Context, documentID string) (*api.AnalyzeResponse, error) {
	doc := c.find(documentID)
	if doc == nil {
		return nil, apperrors.NewValidationError("unknown document", apperrors.ErrCodeValidationFailed)
	}
	if !doc.CanAnalyze() {
		return nil, apperrors.NewValidationError(
			"document is already analyzed", apperrors.ErrCodeIllegalState)
	}

	resp, err := c.api.AnalyzeDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if err := c.Refresh(ctx); err != nil {
		return resp, err
	}
	return resp, nil
}

// SelectForAssignment picks an analyzed document, switches to the assign tab
// and fetches the department choices. Only documents in exactly the analyzed
// state can be selected.
func (c *AdminController) SelectForAssignment(ctx context.Context, documentID string) error {
	doc := c.find(documentID)
	if doc == nil {
		return apperrors.NewValidationError("unknown document", apperrors.ErrCodeValidationFailed)
	}
	if !doc.CanAssign() {
		return apperrors.NewValidationError(
			"only analyzed documents can be assigned", apperrors.ErrCodeIllegalState)
	}

	list, err := c.api.Departments(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(list.Departments))
	for _, d := range list.Departments {
		names = append(names, d.DepartmentName)
	}

	c.selected = doc
	c.departments = names
	c.chosen = make(map[string]bool)
	c.tab = TabAssign
	return nil
}

// DepartmentChoices lists the departments available on the assign tab.
func (c *AdminController) DepartmentChoices() []string {
	return c.departments
}

func (c *AdminController) ToggleDepartment(name string) {
	if c.chosen[name] {
		delete(c.chosen, name)
		return
	}
	c.chosen[name] = true
}

// ChosenDepartments returns the checked departments in choice order.
func (c *AdminController) ChosenDepartments() []string {
	var out []string
	for _, name := range c.departments {
		if c.chosen[name] {
			out = append(out, name)
		}
	}
	return out
}

// SubmitAssignment assigns the selected document. Zero chosen departments is
// rejected before any request is sent. Success clears the selection, resets
// to the list tab and refetches.
func (c *AdminController) SubmitAssignment(ctx context.Context) (*api.AssignResponse, error) {
	if c.tab != TabAssign || c.selected == nil {
		return nil, apperrors.NewValidationError(
			"no document selected for assignment", apperrors.ErrCodeIllegalState)
	}

	chosen := c.ChosenDepartments()
	if len(chosen) == 0 {
		return nil, apperrors.NewValidationError(
			"please select at least one department", apperrors.ErrCodeNoDepartments)
	}

	resp, err := c.api.AssignDocument(ctx, c.selected.DocumentID, chosen)
	if err != nil {
		return nil, err
	}

	c.logger.Info("document assigned",
		"document_id", c.selected.DocumentID,
		"departments", chosen)

	c.selected = nil
	c.chosen = make(map[string]bool)
	c.tab = TabList
	if err := c.Refresh(ctx); err != nil {
		return resp, err
	}
	return resp, nil
}

// CancelAssignment abandons the assign tab without a request.
func (c *AdminController) CancelAssignment() {
	c.selected = nil
	c.chosen = make(map[string]bool)
	c.tab = TabList
}

// EmployeeStatuses fetches the per-employee tracking records for an assigned
// document.
func (c *AdminController) EmployeeStatuses(ctx context.Context, documentID string) ([]status.EmployeeStatus, error) {
	report, err := c.api.EmployeeDocumentStatus(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return report.EmployeeStatuses, nil
}

// SetStatus lets the admin move a document to completed/ignored/deleted, then
// refetches.
func (c *AdminController) SetStatus(ctx context.Context, documentID string, newStatus document.ProcessingStatus) error {
	if _, err := c.api.UpdateDocumentStatus(ctx, documentID, newStatus); err != nil {
		return err
	}
	return c.Refresh(ctx)
}
