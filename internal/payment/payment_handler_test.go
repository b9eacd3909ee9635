package payment_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louiscollinsjr/miere-app/internal/events"
	"github.com/louiscollinsjr/miere-app/internal/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []events.Event
}

func (r *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	r.events = append(r.events, event)
	return nil
}

func setupPaymentRouter(svc payment.Service, pub events.Publisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := payment.NewHandler(svc, pub)
	r.POST("/api/create-payment-intent", h.CreateIntent)
	return r
}

func postIntent(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	t.Run("success_returns_bare_client_secret", func(t *testing.T) {
		proc := &fakeProcessor{secret: "pi_1_secret_x"}
		r := setupPaymentRouter(payment.NewService(proc), nil)

		w := postIntent(r, `{"amount": 19.99}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"clientSecret":"pi_1_secret_x"}`, w.Body.String())
		assert.Equal(t, int64(1999), proc.gotAmount)
		assert.Equal(t, "ron", proc.gotCurrency)
	})

	t.Run("tie_rounds_away_from_zero", func(t *testing.T) {
		proc := &fakeProcessor{secret: "s"}
		r := setupPaymentRouter(payment.NewService(proc), nil)

		w := postIntent(r, `{"amount": 19.995}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(2000), proc.gotAmount)
	})

	t.Run("zero_amount_is_400", func(t *testing.T) {
		proc := &fakeProcessor{secret: "s"}
		r := setupPaymentRouter(payment.NewService(proc), nil)

		w := postIntent(r, `{"amount": 0}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, proc.gotAmount, "processor must not be called")
	})

	t.Run("missing_amount_is_400", func(t *testing.T) {
		r := setupPaymentRouter(payment.NewService(&fakeProcessor{}), nil)

		w := postIntent(r, `{"currency": "ron"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed_body_is_400", func(t *testing.T) {
		r := setupPaymentRouter(payment.NewService(&fakeProcessor{}), nil)

		w := postIntent(r, `{"amount": `)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unconfigured_is_500_for_any_body", func(t *testing.T) {
		r := setupPaymentRouter(payment.NewService(nil), nil)

		for _, body := range []string{`{"amount": 19.99}`, `{"amount": 0}`, `{}`, `garbage`} {
			w := postIntent(r, body)
			assert.Equal(t, http.StatusInternalServerError, w.Code, "body %q", body)
		}
	})

	t.Run("processor_failure_is_500_with_message", func(t *testing.T) {
		proc := &fakeProcessor{err: errors.New("rate limited by processor")}
		r := setupPaymentRouter(payment.NewService(proc), nil)

		w := postIntent(r, `{"amount": 19.99}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "rate limited by processor")
	})

	t.Run("success_publishes_checkout_event", func(t *testing.T) {
		pub := &recordingPublisher{}
		r := setupPaymentRouter(payment.NewService(&fakeProcessor{secret: "s"}), pub)

		w := postIntent(r, `{"amount": 42.00, "currency": "eur"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, pub.events, 1)
		assert.Equal(t, events.TypePaymentIntentCreated, pub.events[0].Type)

		payload, err := json.Marshal(pub.events[0].Payload)
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":4200,"currency":"eur"}`, string(payload))
	})

	t.Run("failure_publishes_nothing", func(t *testing.T) {
		pub := &recordingPublisher{}
		r := setupPaymentRouter(payment.NewService(&fakeProcessor{}), pub)

		postIntent(r, `{"amount": 0}`)

		assert.Empty(t, pub.events)
	})
}
