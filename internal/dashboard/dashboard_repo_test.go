package dashboard_test

import (
	"context"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/dashboard"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_RecentBlogs(t *testing.T) {
	db, mock := setupGorm(t)
	mock.ExpectQuery(`SELECT \* FROM "blogs" ORDER BY published_at DESC LIMIT \$1`).
		WithArgs(dashboard.RecentBlogs).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(uuid.NewString(), "Rilis"))

	blogs, err := dashboard.NewRepository(db).RecentBlogs(context.Background(), dashboard.RecentBlogs)

	require.NoError(t, err)
	assert.Len(t, blogs, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RecentProjects(t *testing.T) {
	db, mock := setupGorm(t)
	mock.ExpectQuery(`FROM "projects" LEFT JOIN "clients" "Client" ON .* ORDER BY projects.created_at DESC LIMIT \$1`).
		WithArgs(dashboard.RecentProjects).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "Client__id", "Client__name"}).
			AddRow(uuid.NewString(), "Portal", uuid.NewString(), "Acme"))

	projects, err := dashboard.NewRepository(db).RecentProjects(context.Background(), dashboard.RecentProjects)

	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.NotNil(t, projects[0].Client)
	assert.Equal(t, "Acme", projects[0].Client.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Team(t *testing.T) {
	db, mock := setupGorm(t)
	mock.ExpectQuery(`SELECT "id","full_name","job_level","specialization","instagram_url","profile_photo_url" FROM "employees" ORDER BY full_name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "job_level"}).
			AddRow(uuid.NewString(), "Budi", "Senior"))

	team, err := dashboard.NewRepository(db).Team(context.Background())

	require.NoError(t, err)
	require.Len(t, team, 1)
	assert.Equal(t, "Senior", team[0].JobLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}
