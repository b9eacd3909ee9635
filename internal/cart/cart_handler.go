package cart

import (
	"net/http"

	carterrors "github.com/louiscollinsjr/miere-app/internal/cart/errors"
	"github.com/louiscollinsjr/miere-app/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	manager  *Manager
	validate *validator.Validate
}

func NewHandler(m *Manager) *Handler {
	return &Handler{
		manager:  m,
		validate: validator.New(),
	}
}

func (h *Handler) store(ctx *gin.Context) (*Store, bool) {
	sessionID := ctx.GetString("cart_session_id")
	if sessionID == "" {
		e := carterrors.ErrMissingSession
		response.Error(ctx, e.HTTPStatus, e.Code, e.Message, nil)
		return nil, false
	}
	return h.manager.Get(sessionID), true
}

func (h *Handler) Detail(ctx *gin.Context) {
	s, ok := h.store(ctx)
	if !ok {
		return
	}
	response.Success(ctx, http.StatusOK, "", toCartResponse(s))
}

func (h *Handler) AddItem(ctx *gin.Context) {
	s, ok := h.store(ctx)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		e := carterrors.ErrInvalidItem
		response.Error(ctx, e.HTTPStatus, e.Code, e.Message, err.Error())
		return
	}
	if req.Price.IsNegative() {
		e := carterrors.ErrInvalidItem
		response.Error(ctx, e.HTTPStatus, e.Code, e.Message, "price must not be negative")
		return
	}

	s.Add(NewItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	})

	response.Success(ctx, http.StatusCreated, "", toCartResponse(s))
}

func (h *Handler) UpdateQty(ctx *gin.Context) {
	s, ok := h.store(ctx)
	if !ok {
		return
	}

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	// quantity <= 0 removes the line, same as SetQuantity itself
	s.SetQuantity(ctx.Param("productId"), req.Quantity)

	response.Success(ctx, http.StatusOK, "", toCartResponse(s))
}

func (h *Handler) DeleteItem(ctx *gin.Context) {
	s, ok := h.store(ctx)
	if !ok {
		return
	}

	s.Remove(ctx.Param("productId"))

	response.Success(ctx, http.StatusOK, "", toCartResponse(s))
}

func (h *Handler) Clear(ctx *gin.Context) {
	s, ok := h.store(ctx)
	if !ok {
		return
	}

	s.Clear()

	response.Success(ctx, http.StatusOK, "", toCartResponse(s))
}

func toCartResponse(s *Store) CartResponse {
	items := s.Items()
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CartItemResponse{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
			ImageURL: it.ImageURL,
		})
	}
	return CartResponse{Items: out, Total: s.Total()}
}
