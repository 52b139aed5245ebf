package repo

import (
	"testing"

	"github.com/GlebRadaev/fieldbook/internal/pg"
	fieldrepo "github.com/GlebRadaev/fieldbook/internal/repo/field-repo"
	orderrepo "github.com/GlebRadaev/fieldbook/internal/repo/order-repo"
	pricingrepo "github.com/GlebRadaev/fieldbook/internal/repo/pricing-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.FieldRepo)
	assert.NotNil(t, repo.PricingRepo)
	assert.NotNil(t, repo.OrderRepo)

	assert.IsType(t, &fieldrepo.Repository{}, repo.FieldRepo)
	assert.IsType(t, &pricingrepo.Repository{}, repo.PricingRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
