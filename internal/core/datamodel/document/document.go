package document

import "time"

type ContentType string

const (
	ContentTypeFile ContentType = "file"
	ContentTypeText ContentType = "text"
)

// ProcessingStatus is the server-owned workflow stage of a document. The
// client only reads it to decide which actions to offer; transitions happen
// server-side and are monotonic through pending -> analyzed -> assigned.
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusAnalyzed   ProcessingStatus = "analyzed"
	StatusAssigned   ProcessingStatus = "assigned"
	StatusCompleted  ProcessingStatus = "completed"
	StatusDeleted    ProcessingStatus = "deleted"
	StatusIgnored    ProcessingStatus = "ignored"
)

type Document struct {
	DocumentID             string           `json:"document_id"`
	FileName               string           `json:"file_name"`
	FileURL                string           `json:"file_url,omitempty"`
	ContentType            ContentType      `json:"content_type"`
	Content                string           `json:"content,omitempty"`
	UploadedBy             string           `json:"uploaded_by"`
	CompanyName            string           `json:"company_name,omitempty"`
	Timestamp              time.Time        `json:"timestamp"`
	ProcessingStatus       ProcessingStatus `json:"processing_status"`
	Summary                string           `json:"summary,omitempty"`
	DocumentType           string           `json:"document_type,omitempty"`
	UrgencyScore           *float64         `json:"urgency_score,omitempty"`
	ImportanceScore        *float64         `json:"importance_score,omitempty"`
	DepartmentsResponsible []string         `json:"departments_responsible,omitempty"`
	DepartmentsAssigned    []string         `json:"departments_assigned,omitempty"`
	Confidence             *float64         `json:"confidence,omitempty"`
	KeyFindings            []string         `json:"key_findings,omitempty"`
	AnalyzedAt             *time.Time       `json:"analyzed_at,omitempty"`
	AssignedAt             *time.Time       `json:"assigned_at,omitempty"`
	ErrorMessage           string           `json:"error_message,omitempty"`

	// Merged in by the backend on employee listings only.
	PersonalStatus   string `json:"personal_status,omitempty"`
	PersonalComments string `json:"personal_comments,omitempty"`
}

// CanAnalyze reports whether the analyze action may be offered. Mirrors the
// listing view: anything not yet analyzed or assigned can be (re)analyzed.
func (d *Document) CanAnalyze() bool {
	return d.ProcessingStatus != StatusAnalyzed && d.ProcessingStatus != StatusAssigned
}

// CanAssign reports whether the assign action may be offered. Only documents
// in exactly the analyzed state are assignable.
func (d *Document) CanAssign() bool {
	return d.ProcessingStatus == StatusAnalyzed
}

// Analysis is the AI analysis result returned by the analyze endpoints.
type Analysis struct {
	Summary                string   `json:"summary"`
	DocumentType           string   `json:"document_type"`
	KeyFindings            []string `json:"key_findings"`
	UrgencyScore           float64  `json:"urgency_score"`
	ImportanceScore        float64  `json:"importance_score"`
	DepartmentsResponsible []string `json:"departments_responsible"`
	Confidence             float64  `json:"confidence"`
}
