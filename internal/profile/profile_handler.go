package profile

import (
	"net/http"

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

func (h *Handler) Get(ctx *gin.Context) {
	userID := ctx.GetString("user_id_validated")

	res, err := h.service.Get(ctx, userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(ctx, http.StatusOK, "", res)
}
