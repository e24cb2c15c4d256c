package assignment

import (
	"context"
	"database/sql"

	"github.com/indocarisinternational/admin-caris/internal/shared/txdb"

	"gorm.io/gorm"
)

const ListLimit = 20

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Assignment) error
	FindAll(ctx context.Context, limit int) ([]Assignment, error)
	FindByID(ctx context.Context, id string) (*Assignment, error)
	Update(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return txdb.Bind(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, a *Assignment) error {
	return r.conn(ctx).Omit("Employee", "Project").Create(a).Error
}

func (r *repository) FindAll(ctx context.Context, limit int) ([]Assignment, error) {
	var assignments []Assignment
	q := r.conn(ctx).
		Joins("Employee").
		Joins("Project").
		Order("employee_projects.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&assignments).Error
	return assignments, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Assignment, error) {
	var a Assignment
	err := r.conn(ctx).
		Joins("Employee").
		Joins("Project").
		First(&a, "employee_projects.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) Update(ctx context.Context, a *Assignment) error {
	res := r.conn(ctx).
		Model(&Assignment{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"employee_id": a.EmployeeID,
			"project_id":  a.ProjectID,
			"role":        a.Role,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Assignment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
