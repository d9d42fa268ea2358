package api

import (
	"context"
	"io"
	"strconv"

	"github.com/docuflow/docuflow-cli/internal/core/datamodel/document"
)

// Documents lists every document visible to the caller: the whole company for
// admins, assigned documents for employees.
func (c *Client) Documents(ctx context.Context) ([]document.Document, error) {
	var resp documentList
	if err := c.getJSON(ctx, "/documents/", &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

// MyDocuments lists the caller's assigned documents with their personal status
// merged in.
func (c *Client) MyDocuments(ctx context.Context) ([]document.Document, error) {
	var resp documentList
	if err := c.getJSON(ctx, "/my-documents/", &resp); err != nil {
		return nil, err
	}
	return resp.Documents, nil
}

func (c *Client) UploadFile(ctx context.Context, fileName string, file io.Reader) (*UploadResponse, error) {
	var resp UploadResponse
	if err := c.postMultipart(ctx, "/upload-file/", nil, "file", fileName, file, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AnalyzeDocument(ctx context.Context, documentID string) (*AnalyzeResponse, error) {
	var resp AnalyzeResponse
	if err := c.postJSON(ctx, "/analyze-document/", AnalyzeDocumentRequest{DocumentID: documentID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeText runs an ad-hoc analysis without creating a document. The backend
// returns the analysis object bare, not wrapped in an envelope.
func (c *Client) AnalyzeText(ctx context.Context, text string) (*document.Analysis, error) {
	var resp document.Analysis
	fields := map[string]string{"text": text}
	if err := c.postMultipart(ctx, "/analyze-text/", fields, "", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateTextDocument(ctx context.Context, title, content string, analyze bool) (*UploadResponse, error) {
	var resp UploadResponse
	fields := map[string]string{
		"title":   title,
		"content": content,
		"analyze": strconv.FormatBool(analyze),
	}
	if err := c.postMultipart(ctx, "/create-text-document/", fields, "", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AssignDocument(ctx context.Context, documentID string, departments []string) (*AssignResponse, error) {
	var resp AssignResponse
	req := AssignDocumentRequest{DocumentID: documentID, Departments: departments}
	if err := c.postJSON(ctx, "/assign-document/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateDocumentStatus(ctx context.Context, documentID string, newStatus document.ProcessingStatus) (*MessageResponse, error) {
	var resp MessageResponse
	req := UpdateDocumentStatusRequest{DocumentID: documentID, Status: newStatus}
	if err := c.postJSON(ctx, "/update-document-status/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
