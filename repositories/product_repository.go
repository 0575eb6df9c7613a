package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/models"
)

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (category_id, name, description, price, stock, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, true, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		product.CategoryID, product.Name, product.Description, product.Price,
		product.Stock, product.ImageURL, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	p := &models.Product{}
	err := r.db.QueryRow(ctx,
		`SELECT id, category_id, name, description, price, stock, image_url, is_active, created_at, updated_at
		 FROM products WHERE id = $1`, id).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.Stock, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) FindAll(ctx context.Context, page, limit, categoryID int, search string) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	whereConditions := []string{"is_active = true"}
	args := []interface{}{}
	argIndex := 1

	if categoryID > 0 {
		whereConditions = append(whereConditions, fmt.Sprintf("category_id = $%d", argIndex))
		args = append(args, categoryID)
		argIndex++
	}
	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	where := " WHERE " + strings.Join(whereConditions, " AND ")

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, category_id, name, description, price, stock, image_url, is_active, created_at, updated_at
	          FROM products` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
			&p.Stock, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4,
		    stock = $5, image_url = $6, is_active = $7, updated_at = $8
		WHERE id = $9
	`
	result, err := r.db.Exec(ctx, query,
		product.CategoryID, product.Name, product.Description, product.Price,
		product.Stock, product.ImageURL, product.IsActive, time.Now(), product.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

func (r *productRepository) SoftDelete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx,
		`UPDATE products SET is_active = false, updated_at = $1 WHERE id = $2`,
		time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}
