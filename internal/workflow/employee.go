package workflow

import (
	"context"
	"log/slog"

	apperrors "github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/document"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/status"
)

// EmployeeAPI is the slice of the API client the employee controller drives.
type EmployeeAPI interface {
	MyDocuments(ctx context.Context) ([]document.Document, error)
	UpdatePersonalStatus(ctx context.Context, documentID string, newStatus status.PersonalStatus, comments string) (*api.MessageResponse, error)
}

// EmployeeController is the employee's assigned-documents screen. Personal
// status moves among in_progress, done and ignored; done and ignored are
// terminal and expose no further update actions.
type EmployeeController struct {
	api    EmployeeAPI
	logger *slog.Logger

	documents []document.Document
}

func NewEmployeeController(employeeAPI EmployeeAPI, logger *slog.Logger) *EmployeeController {
	return &EmployeeController{
		api:    employeeAPI,
		logger: logger,
	}
}

func (c *EmployeeController) Documents() []document.Document {
	return c.documents
}

func (c *EmployeeController) Refresh(ctx context.Context) error {
	docs, err := c.api.MyDocuments(ctx)
	if err != nil {
		return err
	}
	c.documents = docs
	return nil
}

func (c *EmployeeController) find(documentID string) *document.Document {
	for i := range c.documents {
		if c.documents[i].DocumentID == documentID {
			return &c.documents[i]
		}
	}
	return nil
}

func (c *EmployeeController) personalStatus(doc *document.Document) status.PersonalStatus {
	if doc.PersonalStatus == "" {
		return status.Pending
	}
	return status.PersonalStatus(doc.PersonalStatus)
}

// AllowedUpdates lists the statuses the employee may still set on a document.
// Empty for terminal states: the controls are simply not offered.
func (c *EmployeeController) AllowedUpdates(documentID string) []status.PersonalStatus {
	doc := c.find(documentID)
	if doc == nil {
		return nil
	}
	return c.personalStatus(doc).UpdatableTo()
}

// UpdateStatus sets the caller's status on a document and refetches the list.
// Terminal documents and unknown targets are rejected without a request.
func (c *EmployeeController) UpdateStatus(ctx context.Context, documentID string, newStatus status.PersonalStatus, comments string) error {
	doc := c.find(documentID)
	if doc == nil {
		return apperrors.NewValidationError("unknown document", apperrors.ErrCodeValidationFailed)
	}

	if !newStatus.Valid() || newStatus == status.Pending {
		return apperrors.NewValidationError(
			"status must be one of in_progress, done, ignored", apperrors.ErrCodeValidationFailed)
	}

	if c.personalStatus(doc).Terminal() {
		return apperrors.NewValidationError(
			"document is already closed out", apperrors.ErrCodeIllegalState)
	}

	if _, err := c.api.UpdatePersonalStatus(ctx, documentID, newStatus, comments); err != nil {
		return err
	}

	c.logger.Info("personal status updated",
		"document_id", documentID,
		"status", newStatus)

	return c.Refresh(ctx)
}
