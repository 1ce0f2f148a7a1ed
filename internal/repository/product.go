package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopchannel/search/internal/domain"
)

// ProductRepository performs point lookups against the product warehouse.
type ProductRepository interface {
	FindByProductNumber(ctx context.Context, productNumber string) (*domain.ProductRecord, error)
}

type productRepository struct {
	db    *pgxpool.Pool
	table string
}

func NewProductRepository(db *pgxpool.Pool, table string) ProductRepository {
	return &productRepository{
		db:    db,
		table: table,
	}
}

func (r *productRepository) FindByProductNumber(ctx context.Context, productNumber string) (*domain.ProductRecord, error) {
	// NULL columns collapse to empty strings so the record invariant
	// (fields present, possibly empty) holds at the boundary.
	query := fmt.Sprintf(`
	SELECT
		COALESCE(record_id, ''),
		COALESCE(product_number, ''),
		COALESCE(product_name, ''),
		COALESCE(image_uri, ''),
		COALESCE(description, ''),
		COALESCE(custom_uri, ''),
		COALESCE(category, ''),
		COALESCE(brands, ''),
		COALESCE(regular_price, ''),
		COALESCE(sale_price, ''),
		COALESCE(is_available, false)
	FROM %s
	WHERE product_number = $1
	LIMIT 1`, r.table)

	var record domain.ProductRecord
	err := r.db.QueryRow(ctx, query, productNumber).Scan(
		&record.RecordID,
		&record.ProductNumber,
		&record.ProductName,
		&record.ImageURI,
		&record.Description,
		&record.ProductURI,
		&record.Category,
		&record.Brands,
		&record.RegularPrice,
		&record.SalePrice,
		&record.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to look up product %s: %w", productNumber, err)
	}

	record.ID = record.RecordID
	return &record, nil
}
