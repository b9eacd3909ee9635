package product

import (
	"net/http"

	"github.com/louiscollinsjr/miere-app/internal/i18n"
	"github.com/louiscollinsjr/miere-app/internal/pkg/apperror"
	"github.com/louiscollinsjr/miere-app/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) locale(ctx *gin.Context) string {
	if q := ctx.Query("locale"); q != "" {
		return i18n.Normalize(q)
	}
	return i18n.Normalize(ctx.GetHeader("Accept-Language"))
}

func (h *Handler) List(ctx *gin.Context) {
	res, err := h.service.List(ctx, h.locale(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, "Failed to list products", httpErr.Message)
		return
	}
	response.Success(ctx, http.StatusOK, "", res)
}

func (h *Handler) GetBySlug(ctx *gin.Context) {
	res, err := h.service.GetBySlug(ctx, ctx.Param("slug"), h.locale(ctx))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(ctx, http.StatusOK, "", res)
}
