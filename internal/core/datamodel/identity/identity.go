package identity

// Identity is the read-only projection of the authenticated user the backend
// returns from /me/ and the auth endpoints. It is never mutated locally.
type Identity struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	CompanyName    string   `json:"company_name"`
	IsAdmin        bool     `json:"isAdmin"`
	DepartmentName string   `json:"department_name,omitempty"`
	Departments    []string `json:"departments,omitempty"`
	DocsReceived   []string `json:"docs_received,omitempty"`
}

func (i *Identity) Role() string {
	if i.IsAdmin {
		return "admin"
	}
	return "employee"
}
