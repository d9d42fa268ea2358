package workflow_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/docuflow/docuflow-cli/internal/api"
	"github.com/docuflow/docuflow-cli/internal/authflow"
	"github.com/docuflow/docuflow-cli/internal/session"
	"github.com/docuflow/docuflow-cli/internal/workflow"
)

// Admin assignment walked end to end over a real HTTP boundary: log in, list,
// select an analyzed document, fetch departments, choose one and submit.
var _ = Describe("admin assignment scenario", func() {
	var (
		server        *httptest.Server
		client        *api.Client
		listFetches   int
		assignBodies  []string
		loginObserved bool
	)

	BeforeEach(func() {
		listFetches = 0
		assignBodies = nil
		loginObserved = false

		mux := http.NewServeMux()
		mux.HandleFunc("POST /login/", func(w http.ResponseWriter, r *http.Request) {
			loginObserved = true
			http.SetCookie(w, &http.Cookie{Name: "session_token", Value: "tok", Path: "/"})
			fmt.Fprint(w, `{"success":true,"message":"Login successful","user":{"name":"Ana","email":"ana@acme.com","company_name":"Acme","isAdmin":true}}`)
		})
		mux.HandleFunc("GET /documents/", func(w http.ResponseWriter, r *http.Request) {
			listFetches++
			fmt.Fprint(w, `{"documents":[
				{"document_id":"d1","file_name":"q3.pdf","content_type":"file","uploaded_by":"ana@acme.com","timestamp":"2026-08-30T10:00:00Z","processing_status":"analyzed"},
				{"document_id":"d2","file_name":"memo.txt","content_type":"text","uploaded_by":"ana@acme.com","timestamp":"2026-08-30T11:00:00Z","processing_status":"pending"}
			]}`)
		})
		mux.HandleFunc("GET /departments/", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success":true,"company_name":"Acme","total_departments":2,"departments":[
				{"department_id":"dep1","department_name":"Sales","employee_count":1},
				{"department_id":"dep2","department_name":"Finance","employee_count":1}
			]}`)
		})
		mux.HandleFunc("POST /assign-document/", func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("session_token")
			if err != nil || cookie.Value != "tok" {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"detail":"Not authenticated"}`)
				return
			}
			body, _ := io.ReadAll(r.Body)
			assignBodies = append(assignBodies, string(body))
			fmt.Fprint(w, `{"message":"assigned","assigned_to":["bo@acme.com"],"departments":["Sales"]}`)
		})
		server = httptest.NewServer(mux)

		jar, err := cookiejar.New(nil)
		Expect(err).ToNot(HaveOccurred())
		client = api.NewClient(api.Config{BaseURL: server.URL, Timeout: 5 * time.Second}, jar)
	})

	AfterEach(func() {
		server.Close()
	})

	It("should log in, gate selection on analysis and submit the exact assignment", func() {
		ctx := context.Background()
		lg := workflowLogger()
		sessions := session.NewProvider(client, lg)

		flow := authflow.NewLoginFlow(client, sessions, lg)
		ident, err := flow.Submit(ctx, "ana@acme.com", "secret123")
		Expect(err).ToNot(HaveOccurred())
		Expect(ident.IsAdmin).To(BeTrue())
		Expect(loginObserved).To(BeTrue())

		controller := workflow.NewAdminController(client, lg)
		Expect(controller.Refresh(ctx)).To(Succeed())
		Expect(controller.Documents()).To(HaveLen(2))

		// the pending document is not selectable
		Expect(controller.SelectForAssignment(ctx, "d2")).ToNot(Succeed())

		Expect(controller.SelectForAssignment(ctx, "d1")).To(Succeed())
		Expect(controller.ActiveTab()).To(Equal(workflow.TabAssign))
		Expect(controller.DepartmentChoices()).To(Equal([]string{"Sales", "Finance"}))

		controller.ToggleDepartment("Sales")
		fetchesBefore := listFetches

		resp, err := controller.SubmitAssignment(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.Departments).To(Equal([]string{"Sales"}))

		Expect(assignBodies).To(HaveLen(1))
		Expect(assignBodies[0]).To(MatchJSON(`{"document_id":"d1","departments":["Sales"]}`))

		Expect(controller.ActiveTab()).To(Equal(workflow.TabList))
		Expect(controller.Selected()).To(BeNil())
		Expect(listFetches).To(Equal(fetchesBefore + 1))
	})
})
