package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pizza-shop/models"
)

// OrderRepository is the order store. Orders are keyed by id and carry a
// non-owning reference to the user who placed them.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindAllByUser(ctx context.Context, userID int) ([]models.Order, error)
	FindByIDAndUser(ctx context.Context, id, userID int) (*models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	Delete(ctx context.Context, id int) error
}

type pgxOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &pgxOrderRepository{db: db}
}

const orderColumns = `id, user_id, size, flavour, quantity, order_status, created_at, updated_at`

func (r *pgxOrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (user_id, size, flavour, quantity, order_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(
		ctx,
		query,
		order.UserID,
		order.Size,
		order.Flavour,
		order.Quantity,
		order.OrderStatus,
		now,
		now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *pgxOrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrder(row)
}

func (r *pgxOrderRepository) FindByIDAndUser(ctx context.Context, id, userID int) (*models.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND user_id = $2`, id, userID)
	return scanOrder(row)
}

func (r *pgxOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *pgxOrderRepository) FindAllByUser(ctx context.Context, userID int) ([]models.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *pgxOrderRepository) Update(ctx context.Context, order *models.Order) error {
	query := `
		UPDATE orders
		SET size = $1, flavour = $2, quantity = $3, order_status = $4, updated_at = $5
		WHERE id = $6
	`
	order.UpdatedAt = time.Now()
	tag, err := r.db.Exec(
		ctx,
		query,
		order.Size,
		order.Flavour,
		order.Quantity,
		order.OrderStatus,
		order.UpdatedAt,
		order.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *pgxOrderRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.Size,
		&order.Flavour,
		&order.Quantity,
		&order.OrderStatus,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func collectOrders(rows pgx.Rows) ([]models.Order, error) {
	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Size,
			&order.Flavour,
			&order.Quantity,
			&order.OrderStatus,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
