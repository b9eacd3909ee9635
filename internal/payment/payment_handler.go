package payment

import (
	"net/http"

	"github.com/louiscollinsjr/miere-app/internal/events"
	paymenterrors "github.com/louiscollinsjr/miere-app/internal/payment/errors"
	"github.com/louiscollinsjr/miere-app/internal/pkg/apperror"
	"github.com/louiscollinsjr/miere-app/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service   Service
	publisher events.Publisher
}

func NewHandler(s Service, p events.Publisher) *Handler {
	return &Handler{service: s, publisher: p}
}

// CreateIntent validates the checkout amount and asks the processor for
// a payment intent. The success body is exactly {clientSecret}; that is
// the contract the payment widget consumes. No idempotency key is sent,
// so a duplicate submission creates a duplicate intent.
func (h *Handler) CreateIntent(ctx *gin.Context) {
	if !h.service.Configured() {
		e := paymenterrors.ErrNotConfigured
		response.Error(ctx, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	var req CreateIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		e := paymenterrors.ErrInvalidAmount
		response.Error(ctx, e.HTTPStatus, e.Code, e.Message, err.Error())
		return
	}

	res, err := h.service.CreateIntent(ctx, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Code == apperror.CodeInternalError {
			// processor failure: keep the upstream message visible
			response.Error(ctx, http.StatusInternalServerError, apperror.CodeUpstreamError,
				"Failed to create payment intent", err.Error())
			return
		}
		response.Error(ctx, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	events.PublishBestEffort(ctx, h.publisher, events.Event{
		Type: events.TypePaymentIntentCreated,
		Key:  ctx.GetString("cart_session_id"),
		Payload: gin.H{
			"amount":   SmallestUnit(req.Amount),
			"currency": currency,
		},
	})

	ctx.JSON(http.StatusOK, res)
}
