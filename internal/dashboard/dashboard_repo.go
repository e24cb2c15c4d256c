package dashboard

import (
	"context"

	"github.com/indocarisinternational/admin-caris/internal/blog"
	"github.com/indocarisinternational/admin-caris/internal/employee"
	"github.com/indocarisinternational/admin-caris/internal/project"

	"gorm.io/gorm"
)

const (
	RecentBlogs    = 6
	RecentProjects = 10
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	RecentBlogs(ctx context.Context, limit int) ([]blog.Blog, error)
	RecentProjects(ctx context.Context, limit int) ([]project.Project, error)
	Team(ctx context.Context) ([]employee.Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RecentBlogs(ctx context.Context, limit int) ([]blog.Blog, error) {
	var blogs []blog.Blog
	err := r.db.WithContext(ctx).
		Order("published_at DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

func (r *repository) RecentProjects(ctx context.Context, limit int) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.WithContext(ctx).
		Joins("Client").
		Order("projects.created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

func (r *repository) Team(ctx context.Context) ([]employee.Employee, error) {
	var team []employee.Employee
	err := r.db.WithContext(ctx).
		Select("id", "full_name", "job_level", "specialization", "instagram_url", "profile_photo_url").
		Order("full_name ASC").
		Find(&team).Error
	return team, err
}
