package assignment

import (
	"time"

	"github.com/indocarisinternational/admin-caris/internal/employee"
	"github.com/indocarisinternational/admin-caris/internal/project"

	"github.com/google/uuid"
)

// Assignment links one employee to one project with a free text role.
// The same pair may be assigned more than once.
type Assignment struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID          `gorm:"column:employee_id;type:uuid;not null;index"`
	Employee   *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProjectID  uuid.UUID          `gorm:"column:project_id;type:uuid;not null;index"`
	Project    *project.Project   `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Role       string             `gorm:"column:role;not null"`
	CreatedAt  time.Time          `gorm:"column:created_at;autoCreateTime"`
}

func (Assignment) TableName() string {
	return "employee_projects"
}
