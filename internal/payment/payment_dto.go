package payment

import "github.com/shopspring/decimal"

// CreateIntentRequest is the checkout body. Amount arrives in decimal
// major units (lei), not bani; decoding through decimal.Decimal keeps
// the literal exact so rounding happens once, on our side.
type CreateIntentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
