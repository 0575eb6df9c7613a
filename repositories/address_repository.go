package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/models"
)

type addressRepository struct {
	db *pgxpool.Pool
}

func NewAddressRepository(db *pgxpool.Pool) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *models.Address) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if address.IsDefault {
		if _, err := tx.Exec(ctx,
			`UPDATE addresses SET is_default = false WHERE user_id = $1`,
			address.UserID); err != nil {
			return err
		}
	}

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO addresses (user_id, receiver_name, phone, street, city, postal_code, is_default, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		address.UserID, address.ReceiverName, address.Phone, address.Street,
		address.City, address.PostalCode, address.IsDefault, now, now,
	).Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *addressRepository) FindByID(ctx context.Context, id int) (*models.Address, error) {
	a := &models.Address{}
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, receiver_name, phone, street, city, postal_code, is_default, created_at, updated_at
		 FROM addresses WHERE id = $1`, id).Scan(
		&a.ID, &a.UserID, &a.ReceiverName, &a.Phone, &a.Street,
		&a.City, &a.PostalCode, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int) ([]models.Address, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, receiver_name, phone, street, city, postal_code, is_default, created_at, updated_at
		 FROM addresses WHERE user_id = $1 ORDER BY is_default DESC, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.ReceiverName, &a.Phone, &a.Street,
			&a.City, &a.PostalCode, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *addressRepository) Update(ctx context.Context, address *models.Address) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if address.IsDefault {
		if _, err := tx.Exec(ctx,
			`UPDATE addresses SET is_default = false WHERE user_id = $1 AND id <> $2`,
			address.UserID, address.ID); err != nil {
			return err
		}
	}

	result, err := tx.Exec(ctx,
		`UPDATE addresses
		 SET receiver_name = $1, phone = $2, street = $3, city = $4,
		     postal_code = $5, is_default = $6, updated_at = $7
		 WHERE id = $8 AND user_id = $9`,
		address.ReceiverName, address.Phone, address.Street, address.City,
		address.PostalCode, address.IsDefault, time.Now(), address.ID, address.UserID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("address not found")
	}

	return tx.Commit(ctx)
}

func (r *addressRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("address not found")
	}
	return nil
}

func (r *addressRepository) SetDefault(ctx context.Context, userID, addressID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE addresses SET is_default = false WHERE user_id = $1`, userID); err != nil {
		return err
	}

	result, err := tx.Exec(ctx,
		`UPDATE addresses SET is_default = true, updated_at = $1 WHERE id = $2 AND user_id = $3`,
		time.Now(), addressID, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("address not found")
	}

	return tx.Commit(ctx)
}
