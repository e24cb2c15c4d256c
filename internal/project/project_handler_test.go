package project_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/project"
	projecterrors "github.com/indocarisinternational/admin-caris/internal/project/errors"
	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeProjectService struct {
	CreateFn     func(ctx context.Context, req project.CreateProjectRequest, image *attachment.File) (project.ProjectResponse, error)
	GetAllFn     func(ctx context.Context) ([]project.ProjectResponse, error)
	GetOptionsFn func(ctx context.Context) ([]project.ProjectOptionResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (project.ProjectResponse, error)
	UpdateFn     func(ctx context.Context, id string, req project.UpdateProjectRequest, image *attachment.File) (project.ProjectResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeProjectService) Create(ctx context.Context, req project.CreateProjectRequest, image *attachment.File) (project.ProjectResponse, error) {
	return f.CreateFn(ctx, req, image)
}
func (f *fakeProjectService) GetAll(ctx context.Context) ([]project.ProjectResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeProjectService) GetOptions(ctx context.Context) ([]project.ProjectOptionResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeProjectService) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeProjectService) Update(ctx context.Context, id string, req project.UpdateProjectRequest, image *attachment.File) (project.ProjectResponse, error) {
	return f.UpdateFn(ctx, id, req, image)
}
func (f *fakeProjectService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

func TestProjectHandler_Create(t *testing.T) {
	t.Run("zero completed features is accepted", func(t *testing.T) {
		svc := &fakeProjectService{
			CreateFn: func(ctx context.Context, req project.CreateProjectRequest, image *attachment.File) (project.ProjectResponse, error) {
				assert.Equal(t, 0, *req.CompletedFeatures)
				return project.ProjectResponse{}, projecterrors.ErrImageRequired
			},
		}
		r := setupRouter()
		r.POST("/projects", project.NewHandler(svc).Create)

		body := `{"name":"Portal","client_id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","type":"web",
			"completed_features":0,"total_features":4,"started_at":"2025-01-01","deadline":"2025-02-01",
			"status":"pending","description":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Image is required")
	})

	t.Run("missing features", func(t *testing.T) {
		r := setupRouter()
		r.POST("/projects", project.NewHandler(&fakeProjectService{}).Create)

		body := `{"name":"Portal","client_id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","type":"web",
			"total_features":4,"started_at":"2025-01-01","deadline":"2025-02-01","status":"pending","description":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Completed Features is required")
	})

	t.Run("unsupported type", func(t *testing.T) {
		r := setupRouter()
		r.POST("/projects", project.NewHandler(&fakeProjectService{}).Create)

		body := `{"name":"Portal","client_id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","type":"console",
			"completed_features":1,"total_features":4,"started_at":"2025-01-01","deadline":"2025-02-01","status":"pending","description":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Type is invalid")
	})
}

func TestProjectHandler_GetAll_StatusFilter(t *testing.T) {
	svc := &fakeProjectService{
		GetAllFn: func(ctx context.Context) ([]project.ProjectResponse, error) {
			return []project.ProjectResponse{
				{ID: "1", Status: "pending"},
				{ID: "2", Status: "inprogress"},
			}, nil
		},
	}
	r := setupRouter()
	r.GET("/projects", project.NewHandler(svc).GetAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects?status=in-progress", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects?status=unknown", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeProjectService{
		GetByIDFn: func(ctx context.Context, id string) (project.ProjectResponse, error) {
			return project.ProjectResponse{}, projecterrors.ErrProjectNotFound
		},
	}
	r := setupRouter()
	r.GET("/projects/:id", project.NewHandler(svc).GetByID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects/zzz", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
