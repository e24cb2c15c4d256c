package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	projecterrors "github.com/indocarisinternational/admin-caris/internal/project/errors"
	"github.com/indocarisinternational/admin-caris/internal/shared/cachekey"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	dateLayout = "2006-01-02"
	optionsTTL = time.Hour
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateProjectRequest, image *attachment.File) (ProjectResponse, error)
	GetAll(ctx context.Context) ([]ProjectResponse, error)
	GetOptions(ctx context.Context) ([]ProjectOptionResponse, error)
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	Update(ctx context.Context, id string, req UpdateProjectRequest, image *attachment.File) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	images *attachment.Manager
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	images *attachment.Manager,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		images: images,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateProjectRequest,
	image *attachment.File,
) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create project requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	if image == nil {
		return ProjectResponse{}, projecterrors.ErrImageRequired
	}
	p, err := buildProject(req)
	if err != nil {
		s.logger.Warn("create project invalid input", zap.String("request_id", rid), zap.Error(err))
		return ProjectResponse{}, err
	}
	p.ID = uuid.New()

	_, err = s.images.Store(ctx, image, false, func(path string) error {
		p.ImagePath = path

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			s.logger.Error("create project begin tx failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}
		defer tx.Rollback()

		if err := s.repo.WithTx(tx).Create(ctx, p); err != nil {
			s.logger.Error("create project persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}

		if err := tx.Commit(); err != nil {
			s.logger.Error("create project commit failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return ProjectResponse{}, err
	}

	s.invalidateCaches(ctx)
	s.logger.Info("create project success",
		zap.String("request_id", rid),
		zap.String("project_id", p.ID.String()),
	)

	return s.toResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProjectResponse, error) {
	projects, err := s.repo.FindAll(ctx, ListLimit)
	if err != nil {
		s.logger.Error("get all projects failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = s.toResponse(p)
	}
	return res, nil
}

func (s *service) GetOptions(ctx context.Context) ([]ProjectOptionResponse, error) {
	cacheKey := cachekey.ProjectOptions

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []ProjectOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		projects, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]ProjectOptionResponse, len(projects))
		for i, p := range projects {
			resp[i] = ProjectOptionResponse{ID: p.ID.String(), Name: p.Name, Status: string(p.Status)}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, optionsTTL).Err(); err != nil {
					s.logger.Warn("cache project options failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get project options failed", zap.Error(err))
		return nil, err
	}

	return v.([]ProjectOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrProjectNotFound
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get project by id failed", zap.String("project_id", id), zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	return s.toResponse(*p), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateProjectRequest,
	image *attachment.File,
) (ProjectResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update project requested",
		zap.String("request_id", rid),
		zap.String("project_id", id),
		zap.Bool("with_image", image != nil),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrProjectNotFound
	}
	next, err := buildProject(req)
	if err != nil {
		return ProjectResponse{}, err
	}

	var (
		updated  Project
		oldImage string
	)
	stored, err := s.images.Store(ctx, image, true, func(path string) error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		qtx := s.repo.WithTx(tx)
		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn("update project fetch existing failed", zap.String("project_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}

		oldImage = current.ImagePath
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		next.ImagePath = current.ImagePath
		if path != "" {
			next.ImagePath = path
		}

		if err := qtx.Update(ctx, next); err != nil {
			s.logger.Error("update project persist failed", zap.String("project_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		updated = *next
		return nil
	})
	if err != nil {
		return ProjectResponse{}, err
	}

	if stored != "" && oldImage != "" && oldImage != stored {
		s.images.Release(ctx, oldImage)
	}
	s.invalidateCaches(ctx)
	s.logger.Info("update project success", zap.String("request_id", rid), zap.String("project_id", id))

	return s.toResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return projecterrors.ErrProjectNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete project begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Warn("delete project failed", zap.String("project_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.images.Release(ctx, p.ImagePath)
	s.invalidateCaches(ctx)
	s.logger.Info("delete project success", zap.String("request_id", rid), zap.String("project_id", id))
	return nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cachekey.ProjectOptions, cachekey.DashboardSummary).Err(); err != nil {
		s.logger.Error("failed to invalidate project caches", zap.Error(err))
	}
}

func buildProject(req ProjectRequest) (*Project, error) {
	clientID, err := uuid.Parse(strings.TrimSpace(req.ClientID))
	if err != nil {
		return nil, projecterrors.ErrUnknownClient
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	startedAt, err := time.Parse(dateLayout, strings.TrimSpace(req.StartedAt))
	if err != nil {
		return nil, projecterrors.ErrInvalidStartedAt
	}
	deadline, err := time.Parse(dateLayout, strings.TrimSpace(req.Deadline))
	if err != nil {
		return nil, projecterrors.ErrInvalidDeadline
	}

	p := &Project{
		Name:        strings.TrimSpace(req.Name),
		ClientID:    clientID,
		Type:        strings.ToLower(strings.TrimSpace(req.Type)),
		StartedAt:   startedAt,
		Deadline:    deadline,
		Status:      status,
		Description: strings.TrimSpace(req.Description),
	}
	if req.CompletedFeatures != nil {
		p.CompletedFeatures = *req.CompletedFeatures
	}
	if req.TotalFeatures != nil {
		p.TotalFeatures = *req.TotalFeatures
	}
	return p, nil
}

func (s *service) toResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		ClientID:          p.ClientID.String(),
		Type:              p.Type,
		CompletedFeatures: p.CompletedFeatures,
		TotalFeatures:     p.TotalFeatures,
		Progress:          Progress(p.CompletedFeatures, p.TotalFeatures),
		StartedAt:         p.StartedAt.Format(dateLayout),
		Deadline:          p.Deadline.Format(dateLayout),
		Status:            string(p.Status),
		StatusLabel:       p.Status.Label(),
		StatusColor:       StatusColor(string(p.Status)),
		Description:       p.Description,
		ImagePath:         p.ImagePath,
		ImageURL:          s.images.URL(p.ImagePath),
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
	}
	if p.Client != nil {
		resp.ClientName = p.Client.Name
	}
	return resp
}
