package blog_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/blog"
	blogMock "github.com/indocarisinternational/admin-caris/internal/blog/mock"
	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T) (*gin.Engine, *blogMock.MockService) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	svc := blogMock.NewMockService(gomock.NewController(t))
	h := blog.NewHandler(svc)

	r := gin.New()
	r.GET("/blogs", h.GetAll)
	r.PUT("/blogs/:id", h.Update)
	return r, svc
}

func TestBlogHandler_GetAll(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().GetAll(gomock.Any()).Return([]blog.BlogResponse{{ID: "b1", Title: "Halo"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/blogs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"limit":10`)
}

func TestBlogHandler_Update(t *testing.T) {
	t.Run("blank body", func(t *testing.T) {
		r, _ := setupHandler(t)

		body := `{"title":"Halo","published_at":"2025-01-01","revised_at":"2025-01-02","body":"  "}`
		req := httptest.NewRequest(http.MethodPut, "/blogs/b1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Body is required")
	})

	t.Run("success without banner", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().
			Update(gomock.Any(), "b1", gomock.Any(), gomock.Nil()).
			Return(blog.BlogResponse{ID: "b1", Title: "Halo"}, nil)

		body := `{"title":"Halo","published_at":"2025-01-01","revised_at":"2025-01-02","body":"isi"}`
		req := httptest.NewRequest(http.MethodPut, "/blogs/b1", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
