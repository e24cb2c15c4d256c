package blog

import (
	"net/http"

	"github.com/indocarisinternational/admin-caris/internal/shared/request"
	"github.com/indocarisinternational/admin-caris/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const BannerField = "banner"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("blog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("blog.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := response.FromError(c, err)
	h.logger.Warn("blog request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBlogRequest
	if err := request.Bind(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	banner, done, err := request.File(c, BannerField)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer done()

	resp, err := h.service.Create(c.Request.Context(), req, banner)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewListMeta(len(resp), ListLimit)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBlogRequest
	if err := request.Bind(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	banner, done, err := request.File(c, BannerField)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer done()

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req, banner)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
