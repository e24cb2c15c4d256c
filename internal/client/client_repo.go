package client

import (
	"context"
	"database/sql"

	"github.com/indocarisinternational/admin-caris/internal/shared/txdb"

	"gorm.io/gorm"
)

const ListLimit = 20

//go:generate mockgen -source=client_repo.go -destination=mock/client_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *Client) error
	FindAll(ctx context.Context, limit int) ([]Client, error)
	FindOptions(ctx context.Context) ([]Client, error)
	FindByID(ctx context.Context, id string) (*Client, error)
	Update(ctx context.Context, c *Client) error
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

func (r *repository) Create(ctx context.Context, c *Client) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context, limit int) ([]Client, error) {
	var clients []Client
	q := r.conn(ctx).Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&clients).Error
	return clients, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Client, error) {
	var clients []Client
	err := r.conn(ctx).
		Select("id", "name").
		Order("name ASC").
		Find(&clients).Error
	return clients, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Client, error) {
	var c Client
	if err := r.conn(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Client) error {
	return r.conn(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Client{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
