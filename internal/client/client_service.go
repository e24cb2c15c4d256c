package client

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	clienterrors "github.com/indocarisinternational/admin-caris/internal/client/errors"
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

//go:generate mockgen -source=client_service.go -destination=mock/client_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateClientRequest, logo *attachment.File) (ClientResponse, error)
	GetAll(ctx context.Context) ([]ClientResponse, error)
	GetOptions(ctx context.Context) ([]ClientOptionResponse, error)
	GetByID(ctx context.Context, id string) (ClientResponse, error)
	Update(ctx context.Context, id string, req UpdateClientRequest, logo *attachment.File) (ClientResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logos  *attachment.Manager
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	logos *attachment.Manager,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("client.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logos:  logos,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateClientRequest, logo *attachment.File) (ClientResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if logo == nil {
		return ClientResponse{}, clienterrors.ErrLogoRequired
	}
	since, err := time.Parse(dateLayout, strings.TrimSpace(req.ClientSince))
	if err != nil {
		return ClientResponse{}, clienterrors.ErrInvalidClientSince
	}

	c := &Client{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		ClientSince: since,
	}

	_, err = s.logos.Store(ctx, logo, false, func(path string) error {
		c.LogoPath = path

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if err := s.repo.WithTx(tx).Create(ctx, c); err != nil {
			s.logger.Error("create client persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
		return tx.Commit()
	})
	if err != nil {
		return ClientResponse{}, err
	}

	s.invalidateCaches(ctx)
	s.logger.Info("create client success", zap.String("request_id", rid), zap.String("client_id", c.ID.String()))

	return s.toResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.repo.FindAll(ctx, ListLimit)
	if err != nil {
		s.logger.Error("get all clients failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = s.toResponse(c)
	}
	return res, nil
}

func (s *service) GetOptions(ctx context.Context) ([]ClientOptionResponse, error) {
	cacheKey := cachekey.ClientOptions

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []ClientOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		clients, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]ClientOptionResponse, len(clients))
		for i, c := range clients {
			resp[i] = ClientOptionResponse{ID: c.ID.String(), Name: c.Name}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, optionsTTL).Err(); err != nil {
					s.logger.Warn("cache client options failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("get client options failed", zap.Error(err))
		return nil, err
	}

	return v.([]ClientOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ClientResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ClientResponse{}, clienterrors.ErrClientNotFound
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get client by id failed", zap.String("client_id", id), zap.Error(err))
		return ClientResponse{}, mapRepositoryError(err)
	}

	return s.toResponse(*c), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateClientRequest,
	logo *attachment.File,
) (ClientResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return ClientResponse{}, clienterrors.ErrClientNotFound
	}
	since, err := time.Parse(dateLayout, strings.TrimSpace(req.ClientSince))
	if err != nil {
		return ClientResponse{}, clienterrors.ErrInvalidClientSince
	}

	var (
		updated Client
		oldLogo string
	)
	stored, err := s.logos.Store(ctx, logo, true, func(path string) error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		qtx := s.repo.WithTx(tx)
		current, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err)
		}

		oldLogo = current.LogoPath
		current.Name = strings.TrimSpace(req.Name)
		current.ClientSince = since
		if path != "" {
			current.LogoPath = path
		}

		if err := qtx.Update(ctx, current); err != nil {
			s.logger.Error("update client persist failed", zap.String("client_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		updated = *current
		return nil
	})
	if err != nil {
		s.logger.Warn("update client failed", zap.String("request_id", rid), zap.String("client_id", id), zap.Error(err))
		return ClientResponse{}, err
	}

	if stored != "" && oldLogo != "" && oldLogo != stored {
		s.logos.Release(ctx, oldLogo)
	}
	s.invalidateCaches(ctx)

	return s.toResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return clienterrors.ErrClientNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Warn("delete client failed", zap.String("request_id", rid), zap.String("client_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logos.Release(ctx, c.LogoPath)
	s.invalidateCaches(ctx)
	s.logger.Info("delete client success", zap.String("request_id", rid), zap.String("client_id", id))
	return nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cachekey.ClientOptions, cachekey.DashboardSummary).Err(); err != nil {
		s.logger.Error("failed to invalidate client caches", zap.Error(err))
	}
}

func (s *service) toResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		ClientSince: c.ClientSince.Format(dateLayout),
		LogoPath:    c.LogoPath,
		LogoURL:     s.logos.URL(c.LogoPath),
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}
