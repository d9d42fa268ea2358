package status

import "time"

// PersonalStatus is an individual employee's completion state on an assigned
// document. done and ignored are terminal: the workflow offers no way back.
type PersonalStatus string

const (
	Pending    PersonalStatus = "pending"
	InProgress PersonalStatus = "in_progress"
	Done       PersonalStatus = "done"
	Ignored    PersonalStatus = "ignored"
)

func (s PersonalStatus) Valid() bool {
	switch s {
	case Pending, InProgress, Done, Ignored:
		return true
	}
	return false
}

func (s PersonalStatus) Terminal() bool {
	return s == Done || s == Ignored
}

// UpdatableTo lists the statuses an employee may move to from s. Pending and
// in_progress documents can be advanced or dismissed; terminal states cannot.
func (s PersonalStatus) UpdatableTo() []PersonalStatus {
	if s.Terminal() {
		return nil
	}
	return []PersonalStatus{InProgress, Done, Ignored}
}

// EmployeeStatus is one (document, employee) tracking record as reported by
// the employee-document-status endpoint.
type EmployeeStatus struct {
	EmployeeEmail  string         `json:"employee_email"`
	EmployeeName   string         `json:"employee_name,omitempty"`
	DepartmentName string         `json:"department_name,omitempty"`
	PersonalStatus PersonalStatus `json:"personal_status"`
	Comments       string         `json:"comments,omitempty"`
	LastUpdated    *time.Time     `json:"last_updated,omitempty"`
}
