package product

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=product_repo.go -destination=../mock/product/product_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetBySlug(ctx context.Context, slug string) (Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	id, slug, name_en, name_ro, description_en, description_ro,
	price, image_bucket, image_path, health_effects, created_at
`

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	return scanProduct(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p     Product
		price string
	)
	err := row.Scan(
		&p.ID, &p.Slug, &p.NameEN, &p.NameRO, &p.DescriptionEN, &p.DescriptionRO,
		&price, &p.ImageBucket, &p.ImagePath, pq.Array(&p.HealthEffects), &p.CreatedAt,
	)
	if err != nil {
		return Product{}, err
	}

	p.Price, err = decimal.NewFromString(price)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}
