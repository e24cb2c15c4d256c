package counter

import (
	"context"

	"gorm.io/gorm"
)

const EmployeeCode = "employee_code"

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	GetNextValue(ctx context.Context, name string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetNextValue increments the named counter atomically and returns the new value.
func (r *repository) GetNextValue(ctx context.Context, name string) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (name) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, name).Scan(&nextValue).Error
	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
