package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog row. Names and descriptions exist in both
// storefront languages; health effects are the tag list shown on the
// product card ("imunitate", "digestie", ...).
type Product struct {
	ID            string
	Slug          string
	NameEN        string
	NameRO        string
	DescriptionEN string
	DescriptionRO string
	Price         decimal.Decimal
	ImageBucket   string
	ImagePath     string
	HealthEffects []string
	CreatedAt     time.Time
}

type ProductResponse struct {
	ID            string          `json:"id"`
	Slug          string          `json:"slug"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	HealthEffects []string        `json:"healthEffects"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}
