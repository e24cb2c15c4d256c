package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/blog"
	"github.com/indocarisinternational/admin-caris/internal/project"
	"github.com/indocarisinternational/admin-caris/internal/shared/cachekey"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const SummaryTTL = 5 * time.Minute

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context) (Summary, error)
}

type service struct {
	repo    Repository
	banners *attachment.Manager
	photos  *attachment.Manager
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(
	repo Repository,
	banners *attachment.Manager,
	photos *attachment.Manager,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		repo:    repo,
		banners: banners,
		photos:  photos,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func (s *service) Summary(ctx context.Context) (Summary, error) {
	cacheKey := cachekey.DashboardSummary

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var summary Summary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return summary, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		summary, err := s.build(ctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(summary); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, SummaryTTL).Err(); err != nil {
					s.logger.Warn("cache dashboard summary failed", zap.Error(err))
				}
			}
		}
		return summary, nil
	})
	if err != nil {
		return Summary{}, err
	}
	return v.(Summary), nil
}

func (s *service) build(ctx context.Context) (Summary, error) {
	blogs, err := s.repo.RecentBlogs(ctx, RecentBlogs)
	if err != nil {
		return Summary{}, err
	}
	projects, err := s.repo.RecentProjects(ctx, RecentProjects)
	if err != nil {
		return Summary{}, err
	}
	team, err := s.repo.Team(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Blogs:    make([]BlogCard, len(blogs)),
		Projects: make([]ProjectRow, len(projects)),
		Team:     make([]TeamMember, len(team)),
	}
	for i, b := range blogs {
		summary.Blogs[i] = BlogCard{
			ID:          b.ID.String(),
			Title:       b.Title,
			PublishedAt: b.PublishedAt.Format(time.DateOnly),
			Excerpt:     blog.Excerpt(b.Body, blog.ExcerptLength),
			BannerURL:   s.banners.URL(b.BannerPath),
		}
	}
	for i, p := range projects {
		row := ProjectRow{
			ID:          p.ID.String(),
			Name:        p.Name,
			Type:        p.Type,
			Status:      string(p.Status),
			StatusLabel: p.Status.Label(),
			StatusColor: project.StatusColor(string(p.Status)),
			Progress:    project.Progress(p.CompletedFeatures, p.TotalFeatures),
		}
		if p.Client != nil {
			row.ClientName = p.Client.Name
		}
		summary.Projects[i] = row
	}
	for i, e := range team {
		summary.Team[i] = TeamMember{
			ID:             e.ID.String(),
			FullName:       e.FullName,
			JobLevel:       e.JobLevel,
			Specialization: e.Specialization,
			InstagramURL:   e.InstagramURL,
			PhotoURL:       s.photos.URL(e.ProfilePhotoPath),
		}
	}
	return summary, nil
}
