package dashboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/dashboard"
	dashboardMock "github.com/indocarisinternational/admin-caris/internal/dashboard/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := dashboardMock.NewMockService(gomock.NewController(t))
	r := gin.New()
	r.GET("/dashboard", dashboard.NewHandler(svc).Get)

	svc.EXPECT().Summary(gomock.Any()).Return(dashboard.Summary{
		Projects: []dashboard.ProjectRow{{Name: "Portal", ClientName: "Acme"}},
	}, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"client_name":"Acme"`)

	svc.EXPECT().Summary(gomock.Any()).Return(dashboard.Summary{}, errors.New("db down"))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}
