package assignment_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/assignment"
	assignmenterrors "github.com/indocarisinternational/admin-caris/internal/assignment/errors"
	assignmentMock "github.com/indocarisinternational/admin-caris/internal/assignment/mock"
	"github.com/indocarisinternational/admin-caris/internal/employee"
	"github.com/indocarisinternational/admin-caris/internal/project"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service assignment.Service
	repo    *assignmentMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := assignmentMock.NewMockRepository(ctrl)
	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: assignment.NewService(db, repo),
		repo:    repo,
	}
}

func TestAssignmentService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID, projectID := uuid.New(), uuid.New()
	req := assignment.CreateAssignmentRequest{
		EmployeeID: employeeID.String(),
		ProjectID:  projectID.String(),
		Role:       " Backend Engineer ",
	}

	t.Run("same pair twice creates two rows", func(t *testing.T) {
		deps := setupServiceTest(t)
		var ids []uuid.UUID

		for i := 0; i < 2; i++ {
			deps.sqlMock.ExpectBegin()
			deps.sqlMock.ExpectCommit()
		}
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *assignment.Assignment) error {
				assert.Equal(t, employeeID, a.EmployeeID)
				assert.Equal(t, projectID, a.ProjectID)
				assert.Equal(t, "Backend Engineer", a.Role)
				ids = append(ids, a.ID)
				return nil
			}).
			Times(2)

		first, err := deps.service.Create(ctx, req)
		require.NoError(t, err)
		second, err := deps.service.Create(ctx, req)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, ids, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_employee_projects_employee"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, assignmenterrors.ErrUnknownEmployee)
	})

	t.Run("unknown project", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_employee_projects_project"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, assignmenterrors.ErrUnknownProject)
	})
}

func TestAssignmentService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	eid, pid := uuid.New(), uuid.New()

	deps.repo.EXPECT().FindAll(ctx, assignment.ListLimit).Return([]assignment.Assignment{{
		ID:         uuid.New(),
		EmployeeID: eid,
		Employee:   &employee.Employee{ID: eid, FullName: "Andi", Position: "Engineer"},
		ProjectID:  pid,
		Project:    &project.Project{ID: pid, Name: "Portal", Status: project.StatusPending},
		Role:       "QA",
	}}, nil)

	resp, err := deps.service.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Andi", resp[0].Employee.FullName)
	assert.Equal(t, "Portal", resp[0].Project.Name)
	assert.Equal(t, "pending", resp[0].Project.Status)
}

func TestAssignmentService_Update(t *testing.T) {
	ctx := context.Background()
	id, eid, pid := uuid.New(), uuid.New(), uuid.New()
	req := assignment.UpdateAssignmentRequest{EmployeeID: eid.String(), ProjectID: pid.String(), Role: "Lead"}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *assignment.Assignment) error {
				assert.Equal(t, id, a.ID)
				assert.Equal(t, "Lead", a.Role)
				return nil
			})
		deps.repo.EXPECT().FindByID(ctx, id.String()).
			Return(&assignment.Assignment{ID: id, EmployeeID: eid, ProjectID: pid, Role: "Lead"}, nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Update(ctx, id.String(), req)

		require.NoError(t, err)
		assert.Equal(t, "Lead", resp.Role)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, id.String(), req)

		assert.ErrorIs(t, err, assignmenterrors.ErrAssignmentNotFound)
	})
}

func TestAssignmentService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	id := uuid.New()

	deps.repo.EXPECT().Delete(ctx, id.String()).Return(gorm.ErrRecordNotFound)

	assert.ErrorIs(t, deps.service.Delete(ctx, id.String()), assignmenterrors.ErrAssignmentNotFound)
	assert.ErrorIs(t, deps.service.Delete(ctx, "nope"), assignmenterrors.ErrAssignmentNotFound)
}
