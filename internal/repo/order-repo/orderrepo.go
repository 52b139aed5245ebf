package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const orderColumns = `id, user_id, store_id, status, cost, order_ref, description, created_at, updated_at`

// Create stores the order and its detail lines in one transaction and fills
// order.ID and detail.OrderID.
func (r *Repository) Create(ctx context.Context, order *domain.Order, details []domain.OrderDetail) error {
	insertOrder := `
        INSERT INTO orders (user_id, store_id, status, cost, order_ref, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	insertDetail := `
        INSERT INTO order_details (order_id, field_id, start_time, end_time, price)
        VALUES ($1, $2, $3, $4, $5)
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertOrder,
			order.UserID, order.StoreID, string(order.Status), order.Cost, order.OrderRef, order.Description, order.CreatedAt, order.CreatedAt,
		).Scan(&order.ID)
		if err != nil {
			zap.L().Error("can't save order", zap.Int64("order_ref", order.OrderRef), zap.Error(err))
			return fmt.Errorf("insert order: %w", err)
		}
		order.UpdatedAt = order.CreatedAt

		for i := range details {
			details[i].OrderID = order.ID
			d := details[i]
			if _, err := r.db.Exec(ctx, insertDetail, d.OrderID, d.FieldID, d.StartTime, d.EndTime, d.Price); err != nil {
				zap.L().Error("can't save order detail", zap.Int("order_id", order.ID), zap.Error(err))
				return fmt.Errorf("insert order detail: %w", err)
			}
		}
		return nil
	})
}

func (r *Repository) FindByRef(ctx context.Context, orderRef int64) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE order_ref = $1
    `
	return r.findOne(ctx, query, orderRef)
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves the order to status only while its current status is
// one of from. It reports whether a row changed.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from []domain.OrderStatus, to domain.OrderStatus) (bool, error) {
	query := `
        UPDATE orders
        SET status = $1, updated_at = now()
        WHERE id = $2 AND status = ANY($3)
    `
	tag, err := r.db.Exec(ctx, query, string(to), id, statusStrings(from))
	if err != nil {
		zap.L().Error("failed to update order status", zap.Int("order_id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// FailExpired fails every pending order created before the cutoff.
func (r *Repository) FailExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `
        UPDATE orders
        SET status = $1, updated_at = now()
        WHERE status = $2 AND created_at < $3
    `
	tag, err := r.db.Exec(ctx, query, string(domain.OrderFailed), string(domain.OrderPending), before)
	if err != nil {
		zap.L().Error("failed to expire pending orders", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) FindPaidByStore(ctx context.Context, storeID string, filter domain.PaidOrderFilter) ([]domain.Order, error) {
	var sb strings.Builder
	args := []any{storeID, string(domain.OrderPaid)}
	sb.WriteString(`SELECT ` + orderColumns + ` FROM orders o WHERE store_id = $1 AND status = $2`)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if !filter.CreatedFrom.IsZero() {
		sb.WriteString(" AND created_at >= " + arg(filter.CreatedFrom))
	}
	if !filter.CreatedTo.IsZero() {
		sb.WriteString(" AND created_at < " + arg(filter.CreatedTo))
	}
	if !filter.PlayFrom.IsZero() || !filter.PlayTo.IsZero() {
		sb.WriteString(" AND EXISTS (SELECT 1 FROM order_details d WHERE d.order_id = o.id")
		if !filter.PlayFrom.IsZero() {
			sb.WriteString(" AND d.start_time >= " + arg(filter.PlayFrom))
		}
		if !filter.PlayTo.IsZero() {
			sb.WriteString(" AND d.start_time < " + arg(filter.PlayTo))
		}
		sb.WriteString(")")
	}
	sb.WriteString(" ORDER BY created_at DESC")

	return r.findMany(ctx, sb.String(), args...)
}

func (r *Repository) FindPaidByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE user_id = $1 AND status = $2
        ORDER BY created_at DESC
    `
	return r.findMany(ctx, query, userID, string(domain.OrderPaid))
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) FindDetails(ctx context.Context, orderIDs []int) ([]domain.OrderDetail, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	query := `
        SELECT id, order_id, field_id, start_time, end_time, price
        FROM order_details
        WHERE order_id = ANY($1)
        ORDER BY order_id, start_time
    `
	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		zap.L().Error("can't get order details", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var details []domain.OrderDetail
	for rows.Next() {
		var d domain.OrderDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.FieldID, &d.StartTime, &d.EndTime, &d.Price); err != nil {
			zap.L().Error("can't scan order detail row", zap.Error(err))
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	var status string
	err := row.Scan(&o.ID, &o.UserID, &o.StoreID, &status, &o.Cost, &o.OrderRef, &o.Description, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

func statusStrings(statuses []domain.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
