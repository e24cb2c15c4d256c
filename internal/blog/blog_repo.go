package blog

import (
	"context"
	"database/sql"

	"github.com/indocarisinternational/admin-caris/internal/shared/txdb"

	"gorm.io/gorm"
)

const ListLimit = 10

//go:generate mockgen -source=blog_repo.go -destination=mock/blog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, b *Blog) error
	FindAll(ctx context.Context, limit int) ([]Blog, error)
	FindByID(ctx context.Context, id string) (*Blog, error)
	Update(ctx context.Context, b *Blog) error
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

func (r *repository) Create(ctx context.Context, b *Blog) error {
	return r.conn(ctx).Create(b).Error
}

// FindAll leaves out the body; list screens only show the title and banner.
func (r *repository) FindAll(ctx context.Context, limit int) ([]Blog, error) {
	var blogs []Blog
	q := r.conn(ctx).
		Select("id", "title", "published_at", "revised_at", "banner_path").
		Order("published_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&blogs).Error
	return blogs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Blog, error) {
	var b Blog
	if err := r.conn(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *Blog) error {
	return r.conn(ctx).Save(b).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Blog{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
