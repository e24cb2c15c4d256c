package assignment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/assignment"
	assignmenterrors "github.com/indocarisinternational/admin-caris/internal/assignment/errors"
	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAssignmentService struct {
	CreateFn  func(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error)
	GetAllFn  func(ctx context.Context) ([]assignment.AssignmentResponse, error)
	GetByIDFn func(ctx context.Context, id string) (assignment.AssignmentResponse, error)
	UpdateFn  func(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeAssignmentService) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeAssignmentService) GetAll(ctx context.Context) ([]assignment.AssignmentResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeAssignmentService) GetByID(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeAssignmentService) Update(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeAssignmentService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

func TestAssignmentHandler_Create(t *testing.T) {
	t.Run("form post", func(t *testing.T) {
		svc := &fakeAssignmentService{
			CreateFn: func(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
				assert.Equal(t, "Designer", req.Role)
				return assignment.AssignmentResponse{ID: "a1", Role: req.Role}, nil
			},
		}
		r := setupRouter()
		r.POST("/assignments", assignment.NewHandler(svc).Create)

		form := "employee_id=1b4e28ba-2fa1-11d2-883f-0016d3cca427&project_id=6ba7b810-9dad-11d1-80b4-00c04fd430c8&role=Designer"
		req := httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		r := setupRouter()
		r.POST("/assignments", assignment.NewHandler(&fakeAssignmentService{}).Create)

		body := `{"employee_id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","project_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`
		req := httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Role is required")
	})

	t.Run("unknown project", func(t *testing.T) {
		svc := &fakeAssignmentService{
			CreateFn: func(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
				return assignment.AssignmentResponse{}, assignmenterrors.ErrUnknownProject
			},
		}
		r := setupRouter()
		r.POST("/assignments", assignment.NewHandler(svc).Create)

		body := `{"employee_id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427","project_id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8","role":"QA"}`
		req := httptest.NewRequest(http.MethodPost, "/assignments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Project does not exist")
	})
}

func TestAssignmentHandler_GetAll_FilterByProject(t *testing.T) {
	svc := &fakeAssignmentService{
		GetAllFn: func(ctx context.Context) ([]assignment.AssignmentResponse, error) {
			return []assignment.AssignmentResponse{
				{ID: "1", ProjectID: "p1"},
				{ID: "2", ProjectID: "p2"},
				{ID: "3", ProjectID: "p1"},
			}, nil
		},
	}
	r := setupRouter()
	r.GET("/assignments", assignment.NewHandler(svc).GetAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assignments?project_id=p1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestAssignmentHandler_Delete(t *testing.T) {
	svc := &fakeAssignmentService{
		DeleteFn: func(ctx context.Context, id string) error {
			return assignmenterrors.ErrAssignmentNotFound
		},
	}
	r := setupRouter()
	r.DELETE("/assignments/:id", assignment.NewHandler(svc).Delete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/assignments/x", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
