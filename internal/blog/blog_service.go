package blog

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	blogerrors "github.com/indocarisinternational/admin-caris/internal/blog/errors"
	"github.com/indocarisinternational/admin-caris/internal/shared/cachekey"
	"github.com/indocarisinternational/admin-caris/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=blog_service.go -destination=mock/blog_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateBlogRequest, banner *attachment.File) (BlogResponse, error)
	GetAll(ctx context.Context) ([]BlogResponse, error)
	GetByID(ctx context.Context, id string) (BlogResponse, error)
	Update(ctx context.Context, id string, req UpdateBlogRequest, banner *attachment.File) (BlogResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	banners *attachment.Manager
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	banners *attachment.Manager,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("blog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("blog.service")
	}
	return &service{db: db, repo: repo, banners: banners, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateBlogRequest, banner *attachment.File) (BlogResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if banner == nil {
		return BlogResponse{}, blogerrors.ErrBannerRequired
	}
	b, err := buildBlog(req)
	if err != nil {
		return BlogResponse{}, err
	}
	b.ID = uuid.New()

	_, err = s.banners.Store(ctx, banner, false, func(path string) error {
		b.BannerPath = path

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if err := s.repo.WithTx(tx).Create(ctx, b); err != nil {
			s.logger.Error("create blog persist failed", zap.String("request_id", rid), zap.Error(err))
			return mapRepositoryError(err)
		}
		return tx.Commit()
	})
	if err != nil {
		return BlogResponse{}, err
	}

	s.invalidateCaches(ctx)
	s.logger.Info("create blog success", zap.String("request_id", rid), zap.String("blog_id", b.ID.String()))

	return s.toResponse(*b), nil
}

func (s *service) GetAll(ctx context.Context) ([]BlogResponse, error) {
	blogs, err := s.repo.FindAll(ctx, ListLimit)
	if err != nil {
		s.logger.Error("get all blogs failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]BlogResponse, len(blogs))
	for i, b := range blogs {
		res[i] = s.toResponse(b)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (BlogResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BlogResponse{}, blogerrors.ErrBlogNotFound
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BlogResponse{}, mapRepositoryError(err)
	}
	return s.toResponse(*b), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateBlogRequest,
	banner *attachment.File,
) (BlogResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BlogResponse{}, blogerrors.ErrBlogNotFound
	}
	next, err := buildBlog(req)
	if err != nil {
		return BlogResponse{}, err
	}

	var (
		updated   Blog
		oldBanner string
	)
	stored, err := s.banners.Store(ctx, banner, true, func(path string) error {
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

		oldBanner = current.BannerPath
		next.ID = current.ID
		next.CreatedAt = current.CreatedAt
		next.BannerPath = current.BannerPath
		if path != "" {
			next.BannerPath = path
		}

		if err := qtx.Update(ctx, next); err != nil {
			s.logger.Error("update blog persist failed", zap.String("blog_id", id), zap.Error(err))
			return mapRepositoryError(err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		updated = *next
		return nil
	})
	if err != nil {
		return BlogResponse{}, err
	}

	if stored != "" && oldBanner != "" && oldBanner != stored {
		s.banners.Release(ctx, oldBanner)
	}
	s.invalidateCaches(ctx)

	return s.toResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return blogerrors.ErrBlogNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	b, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.banners.Release(ctx, b.BannerPath)
	s.invalidateCaches(ctx)
	s.logger.Info("delete blog success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("blog_id", id),
	)
	return nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cachekey.DashboardSummary).Err(); err != nil {
		s.logger.Error("failed to invalidate dashboard cache", zap.Error(err))
	}
}

func buildBlog(req BlogRequest) (*Blog, error) {
	published, err := time.Parse(dateLayout, strings.TrimSpace(req.PublishedAt))
	if err != nil {
		return nil, blogerrors.ErrInvalidPublishedAt
	}
	revised, err := time.Parse(dateLayout, strings.TrimSpace(req.RevisedAt))
	if err != nil {
		return nil, blogerrors.ErrInvalidRevisedAt
	}
	return &Blog{
		Title:       strings.TrimSpace(req.Title),
		PublishedAt: published,
		RevisedAt:   revised,
		Body:        req.Body,
	}, nil
}

func (s *service) toResponse(b Blog) BlogResponse {
	return BlogResponse{
		ID:          b.ID.String(),
		Title:       b.Title,
		PublishedAt: b.PublishedAt.Format(dateLayout),
		RevisedAt:   b.RevisedAt.Format(dateLayout),
		Body:        b.Body,
		Excerpt:     Excerpt(b.Body, ExcerptLength),
		BannerPath:  b.BannerPath,
		BannerURL:   s.banners.URL(b.BannerPath),
	}
}
