package apperror_test

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleForm struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email_office" validate:"omitempty,email"`
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.RequiredField("Full Name"))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, apperror.CodeValidation, httpErr.Code)
		assert.Equal(t, "Full Name is required", httpErr.Message)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})

	t.Run("wrapped storage failure exposes details", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.StorageFailure(errors.New("bucket missing")))
		assert.Equal(t, http.StatusBadGateway, httpErr.Status)
		assert.Equal(t, "bucket missing", httpErr.Details)
	})
}

func TestAppError_Is(t *testing.T) {
	sentinel := apperror.New(apperror.CodeNotFound, "Project not found", http.StatusNotFound)
	copied := apperror.New(apperror.CodeNotFound, "Project not found", http.StatusNotFound)

	assert.ErrorIs(t, copied, sentinel)
	assert.NotErrorIs(t, apperror.ErrNotFound, sentinel)
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	err := v.Struct(sampleForm{})
	mapped := apperror.MapValidationError(err)
	assert.Equal(t, "Full Name is required", apperror.Message(mapped))

	err = v.Struct(sampleForm{FullName: "Budi", Email: "not-an-email"})
	mapped = apperror.MapValidationError(err)
	assert.Equal(t, "Email Office is invalid", apperror.Message(mapped))
}
