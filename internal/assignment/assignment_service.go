package assignment

import (
	"context"
	"database/sql"
	"strings"
	"time"

	assignmenterrors "github.com/indocarisinternational/admin-caris/internal/assignment/errors"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=assignment_service.go -destination=mock/assignment_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetAll(ctx context.Context) ([]AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (AssignmentResponse, error)
	Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("assignment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assignment.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	a, err := buildAssignment(req)
	if err != nil {
		return AssignmentResponse{}, err
	}
	a.ID = uuid.New()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create assignment begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, a); err != nil {
		s.logger.Warn("create assignment failed", zap.String("request_id", rid), zap.Error(err))
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	s.logger.Info("create assignment success",
		zap.String("request_id", rid),
		zap.String("assignment_id", a.ID.String()),
		zap.String("employee_id", a.EmployeeID.String()),
		zap.String("project_id", a.ProjectID.String()),
	)
	return toResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context) ([]AssignmentResponse, error) {
	assignments, err := s.repo.FindAll(ctx, ListLimit)
	if err != nil {
		s.logger.Error("get all assignments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		res[i] = toResponse(a)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AssignmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	return toResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAssignmentRequest) (AssignmentResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return AssignmentResponse{}, assignmenterrors.ErrAssignmentNotFound
	}
	a, err := buildAssignment(req)
	if err != nil {
		return AssignmentResponse{}, err
	}
	a.ID = parsed

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, a); err != nil {
		s.logger.Warn("update assignment failed", zap.String("assignment_id", id), zap.Error(err))
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	updated, err := qtx.FindByID(ctx, id)
	if err != nil {
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	return toResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return assignmenterrors.ErrAssignmentNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete assignment failed", zap.String("assignment_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete assignment success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("assignment_id", id),
	)
	return nil
}

func buildAssignment(req AssignmentRequest) (*Assignment, error) {
	employeeID, err := uuid.Parse(strings.TrimSpace(req.EmployeeID))
	if err != nil {
		return nil, assignmenterrors.ErrUnknownEmployee
	}
	projectID, err := uuid.Parse(strings.TrimSpace(req.ProjectID))
	if err != nil {
		return nil, assignmenterrors.ErrUnknownProject
	}
	return &Assignment{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		Role:       strings.TrimSpace(req.Role),
	}, nil
}

func toResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		ProjectID:  a.ProjectID.String(),
		Role:       a.Role,
	}
	if !a.CreatedAt.IsZero() {
		resp.CreatedAt = a.CreatedAt.Format(time.RFC3339)
	}
	if a.Employee != nil {
		resp.Employee = &AssignedEmployee{
			ID:       a.Employee.ID.String(),
			FullName: a.Employee.FullName,
			Position: a.Employee.Position,
		}
	}
	if a.Project != nil {
		resp.Project = &AssignedProject{
			ID:     a.Project.ID.String(),
			Name:   a.Project.Name,
			Status: string(a.Project.Status),
		}
	}
	return resp
}
