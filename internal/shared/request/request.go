// Package request holds binding helpers shared by the JSON API and the console.
package request

import (
	"errors"
	"net/http"
	"strings"

	"github.com/indocarisinternational/admin-caris/internal/attachment"
	"github.com/indocarisinternational/admin-caris/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps multipart bodies at 10 MiB.
const maxUploadSize = 10 << 20

// Bind decodes JSON or form bodies into dst and maps validator failures.
func Bind(c *gin.Context, dst any) error {
	limitBody(c)
	if err := c.ShouldBind(dst); err != nil {
		return apperror.MapValidationError(err)
	}
	return nil
}

// File returns the optional upload in field together with a cleanup func.
// Requests that are not multipart carry no file.
func File(c *gin.Context, field string) (*attachment.File, func(), error) {
	noop := func() {}
	if !strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		return nil, noop, nil
	}

	limitBody(c)
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, apperror.InvalidField(field)
	}
	if fh.Size == 0 {
		return nil, noop, nil
	}

	f, closer, err := attachment.FromMultipart(fh)
	if err != nil {
		return nil, noop, apperror.InvalidField(field)
	}
	return f, func() { _ = closer.Close() }, nil
}

func limitBody(c *gin.Context) {
	if c.Request.MultipartForm == nil && strings.HasPrefix(c.ContentType(), gin.MIMEMultipartPOSTForm) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	}
}
