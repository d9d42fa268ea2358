package workflow_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/docuflow/docuflow-cli/internal"
	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/document"
	"github.com/docuflow/docuflow-cli/internal/core/datamodel/status"
	"github.com/docuflow/docuflow-cli/internal/workflow"
)

type statusUpdate struct {
	documentID string
	status     status.PersonalStatus
	comments   string
}

type mockEmployeeAPI struct {
	documents []document.Document

	listCalls int
	updates   []statusUpdate

	updateError error
}

func (m *mockEmployeeAPI) MyDocuments(ctx context.Context) ([]document.Document, error) {
	m.listCalls++
	return m.documents, nil
}

func (m *mockEmployeeAPI) UpdatePersonalStatus(ctx context.Context, documentID string, newStatus status.PersonalStatus, comments string) (*api.MessageResponse, error) {
	m.updates = append(m.updates, statusUpdate{documentID: documentID, status: newStatus, comments: comments})
	if m.updateError != nil {
		return nil, m.updateError
	}
	return &api.MessageResponse{Message: "updated"}, nil
}

var _ = Describe("EmployeeController", func() {
	var (
		mockAPI    *mockEmployeeAPI
		controller *workflow.EmployeeController
		ctx        context.Context
	)

	BeforeEach(func() {
		mockAPI = &mockEmployeeAPI{
			documents: []document.Document{
				{DocumentID: "d1", FileName: "q3.pdf", ProcessingStatus: document.StatusAssigned},
				{DocumentID: "d2", FileName: "memo.txt", ProcessingStatus: document.StatusAssigned, PersonalStatus: "in_progress"},
				{DocumentID: "d3", FileName: "old.pdf", ProcessingStatus: document.StatusAssigned, PersonalStatus: "done"},
				{DocumentID: "d4", FileName: "junk.pdf", ProcessingStatus: document.StatusAssigned, PersonalStatus: "ignored"},
			},
		}
		controller = workflow.NewEmployeeController(mockAPI, workflowLogger())
		ctx = context.Background()
		Expect(controller.Refresh(ctx)).To(Succeed())
	})

	Describe("AllowedUpdates", func() {
		It("should offer the full set for a fresh assignment", func() {
			Expect(controller.AllowedUpdates("d1")).To(Equal([]status.PersonalStatus{
				status.InProgress, status.Done, status.Ignored,
			}))
		})

		It("should offer the full set for an in-progress document", func() {
			Expect(controller.AllowedUpdates("d2")).ToNot(BeEmpty())
		})

		It("should offer nothing for done and ignored documents", func() {
			Expect(controller.AllowedUpdates("d3")).To(BeEmpty())
			Expect(controller.AllowedUpdates("d4")).To(BeEmpty())
		})

		It("should offer nothing for an unknown document", func() {
			Expect(controller.AllowedUpdates("nope")).To(BeEmpty())
		})
	})

	Describe("UpdateStatus", func() {
		It("should send the update with comments and refetch", func() {
			before := mockAPI.listCalls

			err := controller.UpdateStatus(ctx, "d1", status.Done, "reviewed it")

			Expect(err).ToNot(HaveOccurred())
			Expect(mockAPI.updates).To(HaveLen(1))
			Expect(mockAPI.updates[0].documentID).To(Equal("d1"))
			Expect(mockAPI.updates[0].status).To(Equal(status.Done))
			Expect(mockAPI.updates[0].comments).To(Equal("reviewed it"))
			Expect(mockAPI.listCalls).To(Equal(before + 1))
		})

		It("should refuse updating a done document without a request", func() {
			err := controller.UpdateStatus(ctx, "d3", status.InProgress, "")

			Expect(err).To(HaveOccurred())
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeIllegalState))
			Expect(mockAPI.updates).To(BeEmpty())
		})

		It("should refuse updating an ignored document without a request", func() {
			err := controller.UpdateStatus(ctx, "d4", status.Done, "")

			Expect(err).To(HaveOccurred())
			Expect(mockAPI.updates).To(BeEmpty())
		})

		It("should refuse moving a document back to pending", func() {
			err := controller.UpdateStatus(ctx, "d2", status.Pending, "")

			Expect(err).To(HaveOccurred())
			Expect(mockAPI.updates).To(BeEmpty())
		})

		It("should refuse an unknown target status", func() {
			err := controller.UpdateStatus(ctx, "d1", "archived", "")

			Expect(err).To(HaveOccurred())
			Expect(mockAPI.updates).To(BeEmpty())
		})

		It("should refuse an unknown document", func() {
			err := controller.UpdateStatus(ctx, "nope", status.Done, "")

			Expect(err).To(HaveOccurred())
			Expect(mockAPI.updates).To(BeEmpty())
		})

		It("should surface the backend error without losing local state", func() {
			mockAPI.updateError = apperrors.FromStatus(404, "Document not assigned to you")

			err := controller.UpdateStatus(ctx, "d1", status.Done, "")

			Expect(err).To(HaveOccurred())
			Expect(apperrors.IsKind(err, apperrors.ErrorTypeNotFound)).To(BeTrue())
			Expect(controller.Documents()).To(HaveLen(4))
		})
	})
})
