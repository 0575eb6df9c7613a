package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/models"
)

type categoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (name, description, parent_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		category.Name, category.Description, category.ParentID,
	).Scan(&category.ID, &category.CreatedAt)
}

func (r *categoryRepository) FindByID(ctx context.Context, id int) (*models.Category, error) {
	cat := &models.Category{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, parent_id, created_at FROM categories WHERE id = $1`,
		id).Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ParentID, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, parent_id, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.ParentID, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	result, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1, description = $2, parent_id = $3 WHERE id = $4`,
		category.Name, category.Description, category.ParentID, category.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *categoryRepository) CountChildren(ctx context.Context, id int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM categories WHERE parent_id = $1`, id).Scan(&count)
	return count, err
}

func (r *categoryRepository) CountProducts(ctx context.Context, id int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, id).Scan(&count)
	return count, err
}
