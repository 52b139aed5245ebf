package pricingrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
	now       func() time.Time
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
		now:       time.Now,
	}
}

const weeklyColumns = `id, field_id, day_of_week, start_minute, end_minute, price, created_at, retired_at`

// ReplaceWeekly retires the active row of every given slot and inserts the
// new one, all in one transaction.
func (r *Repository) ReplaceWeekly(ctx context.Context, prices []domain.WeeklyPrice) error {
	retire := `
        UPDATE weekly_prices
        SET retired_at = $1
        WHERE field_id = $2 AND day_of_week = $3 AND start_minute = $4 AND end_minute = $5 AND retired_at IS NULL
    `
	insert := `
        INSERT INTO weekly_prices (field_id, day_of_week, start_minute, end_minute, price, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	now := r.now()
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, p := range prices {
			if _, err := r.db.Exec(ctx, retire, now, p.FieldID, string(p.DayOfWeek), p.StartMinute, p.EndMinute); err != nil {
				zap.L().Error("can't retire weekly price", zap.Int("field_id", p.FieldID), zap.Error(err))
				return fmt.Errorf("retire weekly price: %w", err)
			}
			if _, err := r.db.Exec(ctx, insert, p.FieldID, string(p.DayOfWeek), p.StartMinute, p.EndMinute, p.Price, now); err != nil {
				zap.L().Error("can't insert weekly price", zap.Int("field_id", p.FieldID), zap.Error(err))
				return fmt.Errorf("insert weekly price: %w", err)
			}
		}
		return nil
	})
}

func (r *Repository) ListActiveWeekly(ctx context.Context, fieldID int, day domain.DayOfWeek) ([]domain.WeeklyPrice, error) {
	query := `
        SELECT ` + weeklyColumns + `
        FROM weekly_prices
        WHERE field_id = $1 AND day_of_week = $2 AND retired_at IS NULL
        ORDER BY start_minute
    `
	rows, err := r.db.Query(ctx, query, fieldID, string(day))
	if err != nil {
		zap.L().Error("can't list weekly prices", zap.Error(err))
		return nil, err
	}
	return scanWeekly(rows)
}

func (r *Repository) ListActiveWeeklyByField(ctx context.Context, fieldID int) ([]domain.WeeklyPrice, error) {
	query := `
        SELECT ` + weeklyColumns + `
        FROM weekly_prices
        WHERE field_id = $1 AND retired_at IS NULL
        ORDER BY day_of_week, start_minute
    `
	rows, err := r.db.Query(ctx, query, fieldID)
	if err != nil {
		zap.L().Error("can't list weekly prices", zap.Error(err))
		return nil, err
	}
	return scanWeekly(rows)
}

func scanWeekly(rows pgx.Rows) ([]domain.WeeklyPrice, error) {
	defer rows.Close()

	var prices []domain.WeeklyPrice
	for rows.Next() {
		var p domain.WeeklyPrice
		var day string
		if err := rows.Scan(&p.ID, &p.FieldID, &day, &p.StartMinute, &p.EndMinute, &p.Price, &p.CreatedAt, &p.RetiredAt); err != nil {
			zap.L().Error("can't scan weekly price row", zap.Error(err))
			return nil, err
		}
		p.DayOfWeek = domain.DayOfWeek(day)
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

const specialColumns = `id, field_id, start_at, end_at, price, created_at, retired_at`

// ReplaceSpecial is ReplaceWeekly for date-specific overrides.
func (r *Repository) ReplaceSpecial(ctx context.Context, prices []domain.SpecialPrice) error {
	retire := `
        UPDATE special_prices
        SET retired_at = $1
        WHERE field_id = $2 AND start_at = $3 AND end_at = $4 AND retired_at IS NULL
    `
	insert := `
        INSERT INTO special_prices (field_id, start_at, end_at, price, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	now := r.now()
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, p := range prices {
			if _, err := r.db.Exec(ctx, retire, now, p.FieldID, p.StartAt, p.EndAt); err != nil {
				zap.L().Error("can't retire special price", zap.Int("field_id", p.FieldID), zap.Error(err))
				return fmt.Errorf("retire special price: %w", err)
			}
			if _, err := r.db.Exec(ctx, insert, p.FieldID, p.StartAt, p.EndAt, p.Price, now); err != nil {
				zap.L().Error("can't insert special price", zap.Int("field_id", p.FieldID), zap.Error(err))
				return fmt.Errorf("insert special price: %w", err)
			}
		}
		return nil
	})
}

func (r *Repository) ListActiveSpecial(ctx context.Context, fieldID int) ([]domain.SpecialPrice, error) {
	query := `
        SELECT ` + specialColumns + `
        FROM special_prices
        WHERE field_id = $1 AND retired_at IS NULL
        ORDER BY start_at
    `
	rows, err := r.db.Query(ctx, query, fieldID)
	if err != nil {
		zap.L().Error("can't list special prices", zap.Error(err))
		return nil, err
	}
	return scanSpecial(rows)
}

// ListActiveSpecialBetween returns active overrides lying inside [from, to).
func (r *Repository) ListActiveSpecialBetween(ctx context.Context, fieldID int, from, to time.Time) ([]domain.SpecialPrice, error) {
	query := `
        SELECT ` + specialColumns + `
        FROM special_prices
        WHERE field_id = $1 AND retired_at IS NULL AND start_at >= $2 AND end_at <= $3
        ORDER BY start_at
    `
	rows, err := r.db.Query(ctx, query, fieldID, from, to)
	if err != nil {
		zap.L().Error("can't list special prices", zap.Error(err))
		return nil, err
	}
	return scanSpecial(rows)
}

func scanSpecial(rows pgx.Rows) ([]domain.SpecialPrice, error) {
	defer rows.Close()

	var prices []domain.SpecialPrice
	for rows.Next() {
		var p domain.SpecialPrice
		if err := rows.Scan(&p.ID, &p.FieldID, &p.StartAt, &p.EndAt, &p.Price, &p.CreatedAt, &p.RetiredAt); err != nil {
			zap.L().Error("can't scan special price row", zap.Error(err))
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}
