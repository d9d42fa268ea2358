package api

import (
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/department"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/document"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/identity"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/status"
)

// Request shapes match the backend's pydantic models field for field.

type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OTPVerification struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

type CreateDepartmentRequest struct {
	DepartmentName string `json:"department_name"`
	Description    string `json:"description,omitempty"`
}

type AddEmployeeRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	DepartmentName string `json:"department_name"`
}

type AnalyzeDocumentRequest struct {
	DocumentID string `json:"document_id"`
}

type AssignDocumentRequest struct {
	DocumentID  string   `json:"document_id"`
	Departments []string `json:"departments"`
}

type UpdateDocumentStatusRequest struct {
	DocumentID string                    `json:"document_id"`
	Status     document.ProcessingStatus `json:"status"`
}

type UpdatePersonalStatusRequest struct {
	DocumentID string                `json:"document_id"`
	Status     status.PersonalStatus `json:"status"`
	Comments   string                `json:"comments,omitempty"`
}

// Response envelopes, as the backend actually returns them.

type AuthResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Email   string             `json:"email,omitempty"`
	User    *identity.Identity `json:"user,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateDepartmentResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DepartmentID string `json:"department_id"`
}

type DepartmentList struct {
	Success          bool                    `json:"success"`
	CompanyName      string                  `json:"company_name"`
	TotalDepartments int                     `json:"total_departments"`
	Departments      []department.Department `json:"departments"`
}

type AddEmployeeResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	PasswordSent bool   `json:"password_sent"`
}

type documentList struct {
	Documents []document.Document `json:"documents"`
}

type UploadResponse struct {
	FileURL    string `json:"file_url,omitempty"`
	DocumentID string `json:"document_id"`
	Message    string `json:"message"`
}

type AnalyzeResponse struct {
	Message  string            `json:"message"`
	Analysis document.Analysis `json:"analysis"`
}

type AssignResponse struct {
	Message     string   `json:"message"`
	AssignedTo  []string `json:"assigned_to"`
	Departments []string `json:"departments"`
}

type EmployeeStatusReport struct {
	DocumentID       string                  `json:"document_id"`
	DocumentName     string                  `json:"document_name"`
	EmployeeStatuses []status.EmployeeStatus `json:"employee_statuses"`
}

// meEnvelope wraps /me/: {success, message, user}.
type meEnvelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    *identity.Identity `json:"user"`
}
