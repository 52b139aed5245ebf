package fieldrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// FindByID returns nil without error when the field does not exist.
func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Field, error) {
	query := `
        SELECT id, store_id, sport_id, default_price, active, time_zone
        FROM fields
        WHERE id = $1
    `
	var f domain.Field
	err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.StoreID, &f.SportID, &f.DefaultPrice, &f.Active, &f.TimeZone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find field", zap.Int("field_id", id), zap.Error(err))
		return nil, err
	}
	return &f, nil
}
