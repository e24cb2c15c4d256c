package project

import (
	"context"
	"database/sql"

	"github.com/indocarisinternational/admin-caris/internal/shared/txdb"

	"gorm.io/gorm"
)

const ListLimit = 10

//go:generate mockgen -source=project_repo.go -destination=mock/project_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Project) error
	FindAll(ctx context.Context, limit int) ([]Project, error)
	FindOptions(ctx context.Context) ([]Project, error)
	FindByID(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, p *Project) error
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

func (r *repository) Create(ctx context.Context, p *Project) error {
	return r.conn(ctx).Omit("Client").Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, limit int) ([]Project, error) {
	var projects []Project
	q := r.conn(ctx).
		Joins("Client").
		Order("projects.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&projects).Error
	return projects, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := r.conn(ctx).
		Select("id", "name", "status").
		Order("name ASC").
		Find(&projects).Error
	return projects, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Project, error) {
	var p Project
	if err := r.conn(ctx).Joins("Client").First(&p, "projects.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Update(ctx context.Context, p *Project) error {
	return r.conn(ctx).Omit("Client").Save(p).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
