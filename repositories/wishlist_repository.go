package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/models"
)

type wishlistRepository struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) Add(ctx context.Context, userID, productID int) (bool, error) {
	result, err := r.db.Exec(ctx,
		`INSERT INTO wishlist_items (user_id, product_id, added_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id, product_id) DO NOTHING`,
		userID, productID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`,
		userID, productID)
	return err
}

func (r *wishlistRepository) List(ctx context.Context, userID int) ([]models.WishlistEntry, error) {
	query := `
		SELECT wi.product_id, p.name, p.price, p.image_url, p.is_active, wi.added_at
		FROM wishlist_items wi
		JOIN products p ON wi.product_id = p.id
		WHERE wi.user_id = $1
		ORDER BY wi.added_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.WishlistEntry{}
	for rows.Next() {
		var e models.WishlistEntry
		if err := rows.Scan(&e.ProductID, &e.ProductName, &e.Price,
			&e.ImageURL, &e.IsActive, &e.AddedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
