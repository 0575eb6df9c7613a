package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/models"
)

type reviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (user_id, product_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		review.UserID, review.ProductID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
}

func (r *reviewRepository) Exists(ctx context.Context, userID, productID int) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE user_id = $1 AND product_id = $2`,
		userID, productID).Scan(&count)
	return count > 0, err
}

func (r *reviewRepository) FindByID(ctx context.Context, id int) (*models.Review, error) {
	review := &models.Review{}
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, product_id, rating, comment, created_at FROM reviews WHERE id = $1`,
		id).Scan(&review.ID, &review.UserID, &review.ProductID,
		&review.Rating, &review.Comment, &review.CreatedAt)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int) ([]models.Review, error) {
	query := `
		SELECT rv.id, rv.user_id, COALESCE(u.full_name, ''), rv.product_id, rv.rating, rv.comment, rv.created_at
		FROM reviews rv
		LEFT JOIN users u ON rv.user_id = u.id
		WHERE rv.product_id = $1
		ORDER BY rv.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rv models.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.UserName, &rv.ProductID,
			&rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) AverageRating(ctx context.Context, productID int) (float64, error) {
	var avg float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE product_id = $1`,
		productID).Scan(&avg)
	return avg, err
}

func (r *reviewRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("review not found")
	}
	return nil
}
