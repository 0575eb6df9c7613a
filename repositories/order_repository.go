package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/models"
)

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, address_id, total_amount, status, payment_method, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		order.UserID, order.AddressID, order.TotalAmount, order.Status,
		order.PaymentMethod, now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			items[i].OrderID, items[i].ProductID, items[i].Quantity, items[i].Price,
		).Scan(&items[i].ID)
		if err != nil {
			return err
		}

		// Stock never goes negative even if a concurrent checkout slipped past
		// the availability check.
		_, err = tx.Exec(ctx,
			`UPDATE products SET stock = GREATEST(stock - $1, 0), updated_at = $2 WHERE id = $3`,
			items[i].Quantity, now, items[i].ProductID)
		if err != nil {
			return err
		}
	}

	if _, err = tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, order.UserID); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}

	order.Items = items
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	order := &models.Order{}
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, address_id, total_amount, status, payment_method, created_at, updated_at
		 FROM orders WHERE id = $1`, id).Scan(
		&order.ID, &order.UserID, &order.AddressID, &order.TotalAmount,
		&order.Status, &order.PaymentMethod, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity, oi.price
		 FROM order_items oi
		 LEFT JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1
		 ORDER BY oi.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}

func (r *orderRepository) FindByUser(ctx context.Context, userID, page, limit int, status string) ([]models.Order, int, error) {
	return r.findOrders(ctx, page, limit, status, userID)
}

func (r *orderRepository) FindAll(ctx context.Context, page, limit int, status string) ([]models.Order, int, error) {
	return r.findOrders(ctx, page, limit, status, 0)
}

func (r *orderRepository) findOrders(ctx context.Context, page, limit int, status string, userID int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	where := ""
	args := []interface{}{}
	argIndex := 1

	if userID > 0 {
		where = fmt.Sprintf(" WHERE user_id = $%d", argIndex)
		args = append(args, userID)
		argIndex++
	}
	if status != "" {
		if where == "" {
			where = fmt.Sprintf(" WHERE status = $%d", argIndex)
		} else {
			where += fmt.Sprintf(" AND status = $%d", argIndex)
		}
		args = append(args, status)
		argIndex++
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, user_id, address_id, total_amount, status, payment_method, created_at, updated_at
	          FROM orders` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.AddressID, &o.TotalAmount,
			&o.Status, &o.PaymentMethod, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

func (r *orderRepository) CancelWithRestock(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	result, err := tx.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		models.OrderStatusCancelled, now, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("order not found")
	}

	_, err = tx.Exec(ctx,
		`UPDATE products p
		 SET stock = p.stock + oi.quantity, updated_at = $1
		 FROM order_items oi
		 WHERE oi.order_id = $2 AND oi.product_id = p.id`,
		now, id)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
