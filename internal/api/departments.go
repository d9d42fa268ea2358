package api

import (
	"context"
	"net/url"
)

func (c *Client) CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (*CreateDepartmentResponse, error) {
	var resp CreateDepartmentResponse
	if err := c.postJSON(ctx, "/create-department/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Departments(ctx context.Context) (*DepartmentList, error) {
	var resp DepartmentList
	if err := c.getJSON(ctx, "/departments/", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, departmentID string) error {
	return c.delete(ctx, "/delete-department/"+url.PathEscape(departmentID), nil)
}

// AddEmployee creates an employee account in the admin's company. The backend
// generates the initial password and mails it; nothing secret crosses here.
func (c *Client) AddEmployee(ctx context.Context, req AddEmployeeRequest) (*AddEmployeeResponse, error) {
	var resp AddEmployeeResponse
	if err := c.postJSON(ctx, "/add-employee/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, email string) error {
	return c.delete(ctx, "/delete-employee/"+url.PathEscape(email), nil)
}
