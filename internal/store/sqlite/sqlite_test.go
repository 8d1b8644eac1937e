package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1th5/formogenhetskompassen/internal/domain"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testHousehold(name string) *domain.Household {
	return &domain.Household{
		ID:   uuid.New(),
		Name: name,
		Persons: []domain.Person{
			{ID: uuid.New(), Name: "Anna", BirthYear: 1985, OtherSavingsMonthly: decimal.NewFromInt(2000)},
		},
		Assets: []domain.Asset{
			{ID: uuid.New(), Category: domain.CategoryFundsStocks, Label: "Fonder", Value: decimal.NewFromInt(250000)},
		},
		Liabilities: []domain.Liability{
			{ID: uuid.New(), Label: "Bolån", Principal: decimal.NewFromInt(100000), AnnualAmortizationRate: decimal.NewFromFloat(0.02), Type: domain.LiabilityHousingLoan},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	h := testHousehold("Familjen Berg")

	require.NoError(t, s.Save(ctx, h))

	got, err := s.Get(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.ID, got.ID)
	assert.Equal(t, "Familjen Berg", got.Name)
	require.Len(t, got.Persons, 1)
	require.Len(t, got.Assets, 1)
	require.Len(t, got.Liabilities, 1)
	assert.True(t, got.Assets[0].Value.Equal(decimal.NewFromInt(250000)))
	assert.True(t, got.NetWorth().Equal(decimal.NewFromInt(150000)))
}

func TestSaveUpserts(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	h := testHousehold("Före")

	require.NoError(t, s.Save(ctx, h))
	h.Name = "Efter"
	h.Assets[0].Value = decimal.NewFromInt(300000)
	require.NoError(t, s.Save(ctx, h))

	got, err := s.Get(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Efter", got.Name)
	assert.True(t, got.Assets[0].Value.Equal(decimal.NewFromInt(300000)))

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGetUnknownHousehold(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrHouseholdNotFound)
}

func TestListMostRecentFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	a := testHousehold("Hushåll A")
	b := testHousehold("Hushåll B")
	require.NoError(t, s.Save(ctx, a))
	require.NoError(t, s.Save(ctx, b))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, "Hushåll B", list[0].Name)
	assert.Equal(t, a.ID, list[1].ID)

	// Re-saving bumps a household back to the front.
	require.NoError(t, s.Save(ctx, a))
	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	h := testHousehold("Raderas")

	require.NoError(t, s.Save(ctx, h))
	require.NoError(t, s.Delete(ctx, h.ID))

	_, err := s.Get(ctx, h.ID)
	assert.ErrorIs(t, err, domain.ErrHouseholdNotFound)

	err = s.Delete(ctx, h.ID)
	assert.ErrorIs(t, err, domain.ErrHouseholdNotFound)
}
