package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/blog"
	"github.com/indocarisinternational/admin-caris/internal/client"
	"github.com/indocarisinternational/admin-caris/internal/dashboard"
	dashboardMock "github.com/indocarisinternational/admin-caris/internal/dashboard/mock"
	"github.com/indocarisinternational/admin-caris/internal/employee"
	"github.com/indocarisinternational/admin-caris/internal/project"
	"github.com/indocarisinternational/admin-caris/internal/shared/cachekey"
	"github.com/indocarisinternational/admin-caris/internal/storage"
	storageMock "github.com/indocarisinternational/admin-caris/internal/storage/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (dashboard.Service, *dashboardMock.MockRepository, redismock.ClientMock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := dashboardMock.NewMockRepository(ctrl)
	store := storageMock.NewMockStorage(ctrl)
	store.EXPECT().PublicURL(gomock.Any(), gomock.Any()).DoAndReturn(func(bucket, path string) string {
		return "https://cdn.test/" + bucket + "/" + path
	}).AnyTimes()

	rdb, rmock := redismock.NewClientMock()
	svc := dashboard.NewService(
		repo,
		attachment.NewManager(store, nil, storage.BucketBlogs, "banners"),
		attachment.NewManager(store, nil, storage.BucketEmployees, "photos"),
		rdb,
	)
	return svc, repo, rmock
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()
	blogID, projectID, employeeID := uuid.New(), uuid.New(), uuid.New()
	published := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("cache miss builds and stores the summary", func(t *testing.T) {
		svc, repo, rmock := newService(t)
		rmock.ExpectGet(cachekey.DashboardSummary).RedisNil()

		repo.EXPECT().RecentBlogs(gomock.Any(), dashboard.RecentBlogs).Return([]blog.Blog{{
			ID:          blogID,
			Title:       "Rilis Portal",
			PublishedAt: published,
			Body:        "Portal klien baru kami resmi diluncurkan hari ini.",
			BannerPath:  "banners/1_rilis.png",
		}}, nil)
		repo.EXPECT().RecentProjects(gomock.Any(), dashboard.RecentProjects).Return([]project.Project{{
			ID:                projectID,
			Name:              "Portal",
			Client:            &client.Client{Name: "Acme"},
			Type:              "web",
			Status:            project.StatusInProgress,
			CompletedFeatures: 3,
			TotalFeatures:     8,
		}}, nil)
		repo.EXPECT().Team(gomock.Any()).Return([]employee.Employee{{
			ID:             employeeID,
			FullName:       "Budi Santoso",
			JobLevel:       "Senior",
			Specialization: "Backend",
			InstagramURL:   "https://instagram.com/budi",
		}}, nil)
		want := dashboard.Summary{
			Blogs: []dashboard.BlogCard{{
				ID:          blogID.String(),
				Title:       "Rilis Portal",
				PublishedAt: "2024-03-01",
				Excerpt:     "Portal klien baru kami resmi diluncurkan hari ini.",
				BannerURL:   "https://cdn.test/blogs/banners/1_rilis.png",
			}},
			Projects: []dashboard.ProjectRow{{
				ID:          projectID.String(),
				Name:        "Portal",
				ClientName:  "Acme",
				Type:        "web",
				Status:      "inprogress",
				StatusLabel: "In Progress",
				StatusColor: "gray",
				Progress:    "37.5%",
			}},
			Team: []dashboard.TeamMember{{
				ID:             employeeID.String(),
				FullName:       "Budi Santoso",
				JobLevel:       "Senior",
				Specialization: "Backend",
				InstagramURL:   "https://instagram.com/budi",
			}},
		}
		data, _ := json.Marshal(want)
		rmock.ExpectSet(cachekey.DashboardSummary, data, dashboard.SummaryTTL).SetVal("OK")

		summary, err := svc.Summary(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, summary)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		svc, _, rmock := newService(t)
		cached := dashboard.Summary{Team: []dashboard.TeamMember{{FullName: "Sari"}}}
		data, _ := json.Marshal(cached)
		rmock.ExpectGet(cachekey.DashboardSummary).SetVal(string(data))

		summary, err := svc.Summary(ctx)

		require.NoError(t, err)
		require.Len(t, summary.Team, 1)
		assert.Equal(t, "Sari", summary.Team[0].FullName)
	})

	t.Run("query failure is not cached", func(t *testing.T) {
		svc, repo, rmock := newService(t)
		rmock.ExpectGet(cachekey.DashboardSummary).RedisNil()
		repo.EXPECT().RecentBlogs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.Summary(ctx)

		assert.EqualError(t, err, "db down")
		assert.NoError(t, rmock.ExpectationsWereMet())
	})
}
