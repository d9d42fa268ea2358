package api_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/docuflow/docuflow-cli/internal/api"
)

// file parts arrive as application/octet-stream, which has no decoder out of
// the box
var _ = BeforeSuite(func() {
	openapi3filter.RegisterBodyDecoder("application/octet-stream", openapi3filter.FileBodyDecoder)
})

// contractBackend validates every request the client sends against the
// OpenAPI description of the backend, then answers with a generic success
// body. A request the real backend would reject gets recorded as a violation.
type contractBackend struct {
	router     routers.Router
	violations []string
}

func (b *contractBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		route, pathParams, err := b.router.FindRoute(r)
		if err != nil {
			b.violations = append(b.violations,
				fmt.Sprintf("%s %s: no matching operation: %v", r.Method, r.URL.Path, err))
		} else {
			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				b.violations = append(b.violations,
					fmt.Sprintf("%s %s: %v", r.Method, r.URL.Path, err))
			}
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"message":"ok","user":{"name":"Ana","email":"ana@acme.com","company_name":"Acme","isAdmin":true}}`)
	}
}

var _ = Describe("API contract", func() {
	var (
		backend *contractBackend
		server  *httptest.Server
		client  *api.Client
		ctx     context.Context
	)

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromFile("../../docs/openapi.yaml")
		Expect(err).ToNot(HaveOccurred())
		Expect(doc.Validate(context.Background())).To(Succeed())

		router, err := gorillamux.NewRouter(doc)
		Expect(err).ToNot(HaveOccurred())

		backend = &contractBackend{router: router}
		server = httptest.NewServer(backend.handler())
		client = newTestClient(server.URL)
		ctx = context.Background()
	})

	AfterEach(func() {
		server.Close()
	})

	It("should satisfy the backend description for every operation", func() {
		_, err := client.Signup(ctx, api.SignupRequest{
			Name: "Ana", Email: "ana@acme.com", Password: "secret123", CompanyName: "Acme",
		})
		Expect(err).ToNot(HaveOccurred())

		_, err = client.VerifySignupOTP(ctx, api.OTPVerification{Email: "ana@acme.com", OTP: "123456"})
		Expect(err).ToNot(HaveOccurred())

		_, err = client.ResendSignupOTP(ctx)
		Expect(err).ToNot(HaveOccurred())

		_, err = client.Login(ctx, api.Credentials{Email: "ana@acme.com", Password: "secret123"})
		Expect(err).ToNot(HaveOccurred())

		_, err = client.CurrentUser(ctx)
		Expect(err).ToNot(HaveOccurred())

		_, err = client.ForgotPassword(ctx, "ana@acme.com")
		Expect(err).ToNot(HaveOccurred())

		_, err = client.ResetPassword(ctx, api.ResetPasswordRequest{
			Email: "ana@acme.com", OTP: "123456", NewPassword: "secret456",
		})
		Expect(err).ToNot(HaveOccurred())

		_, err = client.CreateDepartment(ctx, api.CreateDepartmentRequest{
			DepartmentName: "Sales", Description: "field sales",
		})
		Expect(err).ToNot(HaveOccurred())

		_, err = client.Departments(ctx)
		Expect(err).ToNot(HaveOccurred())

		Expect(client.DeleteDepartment(ctx, "dep1")).To(Succeed())

		_, err = client.AddEmployee(ctx, api.AddEmployeeRequest{
			Name: "Bo", Email: "bo@acme.com", DepartmentName: "Sales",
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(client.DeleteEmployee(ctx, "bo@acme.com")).To(Succeed())

		_, err = client.Documents(ctx)
		Expect(err).ToNot(HaveOccurred())

		_, err = client.MyDocuments(ctx)
		Expect(err).ToNot(HaveOccurred())

		_, err = client.UploadFile(ctx, "report.pdf", strings.NewReader("pdf-bytes"))
		Expect(err).ToNot(HaveOccurred())

		_, err = client.AnalyzeText(ctx, "loose text to analyze")
		Expect(err).ToNot(HaveOccurred())

		_, err = client.CreateTextDocument(ctx, "Notes", "body", true)
		Expect(err).ToNot(HaveOccurred())

		_, err = client.AnalyzeDocument(ctx, "d1")
		Expect(err).ToNot(HaveOccurred())

		_, err = client.AssignDocument(ctx, "d1", []string{"Sales"})
		Expect(err).ToNot(HaveOccurred())

		_, err = client.UpdateDocumentStatus(ctx, "d1", "completed")
		Expect(err).ToNot(HaveOccurred())

		_, err = client.UpdatePersonalStatus(ctx, "d1", "done", "read it")
		Expect(err).ToNot(HaveOccurred())

		_, err = client.EmployeeDocumentStatus(ctx, "d1")
		Expect(err).ToNot(HaveOccurred())

		_, err = client.Logout(ctx)
		Expect(err).ToNot(HaveOccurred())

		Expect(backend.violations).To(BeEmpty())
	})
})
