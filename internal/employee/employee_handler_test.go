package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/employee"
	employeeerrors "github.com/indocarisinternational/admin-caris/internal/employee/errors"
	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, req employee.CreateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context) ([]employee.EmployeeOptionResponse, error)
	GetByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, id string) error
	ProfilePDFFn func(ctx context.Context, id string) ([]byte, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req, photo)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req, photo)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}
func (f *fakeEmployeeService) ProfilePDF(ctx context.Context, id string) ([]byte, error) {
	return f.ProfilePDFFn(ctx, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	return gin.New()
}

type envelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Total int `json:"total"`
		Limit int `json:"limit"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func multipartBody(t *testing.T, fields map[string]string, fileField, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success json without photo", func(t *testing.T) {
		employeeID := uuid.New().String()
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Budi Santoso", req.FullName)
				assert.Equal(t, "Engineer", req.Position)
				assert.Nil(t, photo)
				return employee.EmployeeResponse{ID: employeeID, FullName: req.FullName}, nil
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"full_name":"Budi Santoso","position":"Engineer","department":"IT"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decode(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), employeeID)
	})

	t.Run("success multipart with photo", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error) {
				require.NotNil(t, photo)
				assert.Equal(t, "budi.png", photo.Name)
				data, err := io.ReadAll(photo.Body)
				require.NoError(t, err)
				assert.Equal(t, "png-bytes", string(data))
				assert.Equal(t, employee.BadgeInput("Data,Cloud"), req.Badges)
				return employee.EmployeeResponse{ID: uuid.New().String()}, nil
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		body, ct := multipartBody(t, map[string]string{
			"full_name":  "Budi",
			"position":   "Engineer",
			"department": "IT",
			"badges":     "Data,Cloud",
		}, employee.PhotoField, "budi.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/employees", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("badges as a json list", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error) {
				assert.Equal(t, employee.BadgeInput("Data,Cloud"), req.Badges)
				return employee.EmployeeResponse{ID: uuid.New().String()}, nil
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"full_name":"Budi","position":"Engineer","department":"IT","badges":["Data","Cloud"]}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("blank required field", func(t *testing.T) {
		called := false
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error) {
				called = true
				return employee.EmployeeResponse{}, nil
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"full_name":"   ","position":"Engineer","department":"IT"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
		env := decode(t, w)
		assert.Equal(t, apperror.CodeValidation, env.Error.Code)
		assert.Equal(t, "Full Name is required", env.Error.Message)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, apperror.StorageFailure(errors.New("bucket down"))
			},
		}
		r := setupRouter()
		r.POST("/employees", employee.NewHandler(svc).Create)

		body := `{"full_name":"Budi","position":"Engineer","department":"IT"}`
		req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, apperror.CodeStorageFailure, decode(t, w).Error.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
			return []employee.EmployeeResponse{
				{ID: "1", FullName: "Andi", Position: "Engineer", Department: "IT"},
				{ID: "2", FullName: "Sari", Position: "Designer", Department: "Creative"},
			}, nil
		},
	}
	r := setupRouter()
	r.GET("/employees", employee.NewHandler(svc).GetAll)

	t.Run("all", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Meta)
		assert.Equal(t, 2, env.Meta.Total)
		assert.Equal(t, employee.ListLimit, env.Meta.Limit)
	})

	t.Run("filtered by q", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees?q=creat", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		var items []employee.EmployeeResponse
		require.NoError(t, json.Unmarshal(env.Data, &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Sari", items[0].FullName)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	svc := &fakeEmployeeService{
		GetOptionsFn: func(ctx context.Context) ([]employee.EmployeeOptionResponse, error) {
			return []employee.EmployeeOptionResponse{{ID: "1", FullName: "Andi", Position: "Engineer"}}, nil
		},
	}
	r := setupRouter()
	r.GET("/employees/options", employee.NewHandler(svc).GetOptions)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/options", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decode(t, w).Meta.Total)
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}
		r := setupRouter()
		r.GET("/employees/:id", employee.NewHandler(svc).GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decode(t, w)
		assert.Equal(t, apperror.CodeNotFound, env.Error.Code)
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("pq: connection reset")
			},
		}
		r := setupRouter()
		r.GET("/employees/:id", employee.NewHandler(svc).GetByID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/x", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	id := uuid.New().String()
	svc := &fakeEmployeeService{
		UpdateFn: func(ctx context.Context, gotID string, req employee.UpdateEmployeeRequest, photo *attachment.File) (employee.EmployeeResponse, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, "2024-01-15", req.JoinDate)
			return employee.EmployeeResponse{ID: gotID, FullName: req.FullName}, nil
		},
	}
	r := setupRouter()
	r.PUT("/employees/:id", employee.NewHandler(svc).Update)

	t.Run("success", func(t *testing.T) {
		body := `{"full_name":"Andi","position":"Lead","department":"IT","join_date":"2024-01-15"}`
		req := httptest.NewRequest(http.MethodPut, "/employees/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		body := `{"full_name":"Andi","position":"Lead","department":"IT","join_date":"15/01/2024"}`
		req := httptest.NewRequest(http.MethodPut, "/employees/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Join Date is invalid", decode(t, w).Error.Message)
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	id := uuid.New().String()
	deleted := ""
	svc := &fakeEmployeeService{
		DeleteFn: func(ctx context.Context, gotID string) error {
			deleted = gotID
			return nil
		},
	}
	r := setupRouter()
	r.DELETE("/employees/:id", employee.NewHandler(svc).Delete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, deleted)
}

func TestEmployeeHandler_ProfilePDF(t *testing.T) {
	svc := &fakeEmployeeService{
		ProfilePDFFn: func(ctx context.Context, id string) ([]byte, error) {
			return []byte("%PDF-1.3"), nil
		},
	}
	r := setupRouter()
	r.GET("/employees/:id/profile.pdf", employee.NewHandler(svc).ProfilePDF)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/abc/profile.pdf", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}
