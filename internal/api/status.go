package api

import (
	"context"
	"net/url"

	"github.com/docuflow/docuflow-cli/internal/core/datamodel/status"
)

// EmployeeDocumentStatus lists every employee's tracking record for a
// document. Admin only.
func (c *Client) EmployeeDocumentStatus(ctx context.Context, documentID string) (*EmployeeStatusReport, error) {
	var resp EmployeeStatusReport
	if err := c.getJSON(ctx, "/employee-document-status/"+url.PathEscape(documentID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdatePersonalStatus updates the caller's own status on an assigned document.
func (c *Client) UpdatePersonalStatus(ctx context.Context, documentID string, newStatus status.PersonalStatus, comments string) (*MessageResponse, error) {
	var resp MessageResponse
	req := UpdatePersonalStatusRequest{
		DocumentID: documentID,
		Status:     newStatus,
		Comments:   comments,
	}
	if err := c.postJSON(ctx, "/update-personal-doc-status/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
