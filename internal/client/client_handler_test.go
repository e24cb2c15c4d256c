package client_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/client"
	clienterrors "github.com/indocarisinternational/admin-caris/internal/client/errors"
	clientMock "github.com/indocarisinternational/admin-caris/internal/client/mock"
	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T) (*gin.Engine, *clientMock.MockService) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	svc := clientMock.NewMockService(gomock.NewController(t))
	h := client.NewHandler(svc)

	r := gin.New()
	r.POST("/clients", h.Create)
	r.GET("/clients", h.GetAll)
	r.GET("/clients/:id", h.GetByID)
	r.DELETE("/clients/:id", h.Delete)
	return r, svc
}

func TestClientHandler_Create(t *testing.T) {
	t.Run("multipart with logo", func(t *testing.T) {
		r, svc := setupHandler(t)

		svc.EXPECT().
			Create(gomock.Any(), client.CreateClientRequest{Name: "Acme", ClientSince: "2021-06-01"}, gomock.Not(gomock.Nil())).
			DoAndReturn(func(ctx context.Context, req client.CreateClientRequest, logo *attachment.File) (client.ClientResponse, error) {
				assert.Equal(t, "acme.png", logo.Name)
				return client.ClientResponse{ID: "c1", Name: req.Name}, nil
			})

		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		require.NoError(t, mw.WriteField("name", "Acme"))
		require.NoError(t, mw.WriteField("client_since", "2021-06-01"))
		fw, err := mw.CreateFormFile(client.LogoField, "acme.png")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("png"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/clients", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing client since", func(t *testing.T) {
		r, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Client Since is required")
	})

	t.Run("logo missing is reported by the service", func(t *testing.T) {
		r, svc := setupHandler(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Nil()).Return(client.ClientResponse{}, clienterrors.ErrLogoRequired)

		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(`{"name":"Acme","client_since":"2021-06-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Logo is required")
	})
}

func TestClientHandler_GetAll(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().GetAll(gomock.Any()).Return([]client.ClientResponse{{ID: "a"}, {ID: "b"}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestClientHandler_GetByID_NotFound(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().GetByID(gomock.Any(), "missing").Return(client.ClientResponse{}, clienterrors.ErrClientNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandler_Delete_InUse(t *testing.T) {
	r, svc := setupHandler(t)
	svc.EXPECT().Delete(gomock.Any(), "c1").Return(clienterrors.ErrClientInUse)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/clients/c1", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Client still has projects")
}
