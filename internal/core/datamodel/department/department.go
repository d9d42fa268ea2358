package department

type Employee struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"isAdmin"`
	DepartmentName string `json:"department_name,omitempty"`
}

type Department struct {
	DepartmentID   string     `json:"department_id"`
	DepartmentName string     `json:"department_name"`
	Description    string     `json:"description,omitempty"`
	EmployeeCount  int        `json:"employee_count"`
	Employees      []Employee `json:"employees,omitempty"`
}
