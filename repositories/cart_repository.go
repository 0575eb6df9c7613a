package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/models"
)

type cartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Upsert(ctx context.Context, userID, productID, quantity int) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`
	_, err := r.db.Exec(ctx, query, userID, productID, quantity)
	return err
}

func (r *cartRepository) SetQuantity(ctx context.Context, userID, productID, quantity int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE cart_items SET quantity = $1 WHERE user_id = $2 AND product_id = $3`,
		quantity, userID, productID)
	return err
}

func (r *cartRepository) Remove(ctx context.Context, userID, productID int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`,
		userID, productID)
	return err
}

func (r *cartRepository) Clear(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}

func (r *cartRepository) ListLines(ctx context.Context, userID int) ([]models.CartLine, error) {
	query := `
		SELECT ci.product_id, p.name, p.price, ci.quantity, p.stock, p.image_url, ci.added_at
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		ORDER BY ci.added_at
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var l models.CartLine
		if err := rows.Scan(&l.ProductID, &l.ProductName, &l.Price, &l.Quantity,
			&l.Stock, &l.ImageURL, &l.AddedAt); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
