package assignment

type AssignmentRequest struct {
	EmployeeID string `json:"employee_id" form:"employee_id" binding:"required,uuid"`
	ProjectID  string `json:"project_id" form:"project_id" binding:"required,uuid"`
	Role       string `json:"role" form:"role" binding:"required,notblank"`
}

type (
	CreateAssignmentRequest = AssignmentRequest
	UpdateAssignmentRequest = AssignmentRequest
)

type AssignedEmployee struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Position string `json:"position"`
}

type AssignedProject struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type AssignmentResponse struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employee_id"`
	ProjectID  string            `json:"project_id"`
	Role       string            `json:"role"`
	CreatedAt  string            `json:"created_at"`
	Employee   *AssignedEmployee `json:"employee,omitempty"`
	Project    *AssignedProject  `json:"project,omitempty"`
}
