//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agromarket-api/internal/domain/promotion"
	"agromarket-api/internal/pkg/clock"
	"agromarket-api/internal/usecase/queries"
	"agromarket-api/internal/usecase/shared"
	"agromarket-api/tests/common/builder"
	queriesmock "agromarket-api/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newOfferQueries(t *testing.T) (queries.OfferQueries, *queriesmock.MockPromotionReadStore, *queriesmock.MockOfferCatalogReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	promotions := queriesmock.NewMockPromotionReadStore(ctrl)
	catalog := queriesmock.NewMockOfferCatalogReadStore(ctrl)
	q := queries.NewOfferQueries(promotions, catalog, promotion.NewResolver(), clock.NewMockClock(testNow))
	return q, promotions, catalog
}

func TestOfferQueriesListCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only currently valid codes", func(t *testing.T) {
		q, promotions, _ := newOfferQueries(t)

		valid := builder.NewPromotionBuilder(testNow).WithCode("SAVE10").BuildSnapshot()
		expired := builder.NewPromotionBuilder(testNow).WithCode("OLD20").
			WithWindow(testNow.Add(-96*time.Hour), testNow.Add(-24*time.Hour)).BuildSnapshot()
		promotions.EXPECT().ListAll(ctx).
			Return([]*shared.PromotionSnapshot{valid, expired}, nil).Times(1)

		views, err := q.ListCodes(ctx)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "SAVE10", views[0].Code)
		assert.Equal(t, "10% off", views[0].DisplayValue)
		require.NotNil(t, views[0].PercentOff)
		assert.Equal(t, float64(10), *views[0].PercentOff)
	})

	t.Run("skips rows whose benefit cannot be reconstructed", func(t *testing.T) {
		q, promotions, _ := newOfferQueries(t)

		good := builder.NewPromotionBuilder(testNow).WithCode("SAVE10").BuildSnapshot()
		broken := builder.NewPromotionBuilder(testNow).WithCode("BROKEN").BuildSnapshot()
		broken.PercentOff = nil
		broken.Kind = "percentage"
		unknownKind := builder.NewPromotionBuilder(testNow).WithCode("WEIRD").BuildSnapshot()
		unknownKind.Kind = "mystery"
		promotions.EXPECT().ListAll(ctx).
			Return([]*shared.PromotionSnapshot{good, broken, unknownKind}, nil).Times(1)

		views, err := q.ListCodes(ctx)

		require.NoError(t, err)
		// nil percent_off degrades to 0% which is still a valid benefit;
		// an unknown kind drops the row entirely.
		require.Len(t, views, 2)
		assert.Equal(t, "SAVE10", views[0].Code)
		assert.Equal(t, "BROKEN", views[1].Code)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		q, promotions, _ := newOfferQueries(t)
		promotions.EXPECT().ListAll(ctx).Return(nil, errors.New("connection refused")).Times(1)

		_, err := q.ListCodes(ctx)
		assert.Error(t, err)
	})
}

func TestOfferQueriesListOffers(t *testing.T) {
	ctx := context.Background()

	t.Run("combines codes with discounted products", func(t *testing.T) {
		q, promotions, catalog := newOfferQueries(t)

		promo := builder.NewPromotionBuilder(testNow).WithCode("SAVE10").WithPercentOff(10)
		prod := builder.NewProductBuilder(testNow).WithPriceCents(10000).WithPromotions(promo.ID)
		promotions.EXPECT().ListAll(ctx).
			Return([]*shared.PromotionSnapshot{promo.BuildSnapshot()}, nil).Times(1)
		catalog.EXPECT().ListWithPromotions(ctx).
			Return([]*shared.ProductSnapshot{prod.BuildSnapshot()}, nil).Times(1)

		page, err := q.ListOffers(ctx)

		require.NoError(t, err)
		require.Len(t, page.Codes, 1)
		require.Len(t, page.Products, 1)
		assert.Equal(t, "SAVE10", page.Products[0].Code)
		assert.Equal(t, int64(9000), page.Products[0].FinalPriceCents)
		assert.Equal(t, int64(1000), page.Products[0].SavingsCents)
	})

	t.Run("empty page when nothing is valid", func(t *testing.T) {
		q, promotions, catalog := newOfferQueries(t)

		pending := builder.NewPromotionBuilder(testNow).AsPending()
		prod := builder.NewProductBuilder(testNow).WithPromotions(pending.ID)
		promotions.EXPECT().ListAll(ctx).
			Return([]*shared.PromotionSnapshot{pending.BuildSnapshot()}, nil).Times(1)
		catalog.EXPECT().ListWithPromotions(ctx).
			Return([]*shared.ProductSnapshot{prod.BuildSnapshot()}, nil).Times(1)

		page, err := q.ListOffers(ctx)

		require.NoError(t, err)
		assert.Empty(t, page.Codes)
		assert.Empty(t, page.Products)
	})
}

func TestOfferQueriesValidateCode(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code returns code details and offers", func(t *testing.T) {
		q, promotions, catalog := newOfferQueries(t)

		promo := builder.NewPromotionBuilder(testNow).WithCode("SAVE10")
		prod := builder.NewProductBuilder(testNow).WithPriceCents(10000).WithPromotions(promo.ID)
		promotions.EXPECT().ListAll(ctx).
			Return([]*shared.PromotionSnapshot{promo.BuildSnapshot()}, nil).Times(1)
		catalog.EXPECT().ListWithPromotions(ctx).
			Return([]*shared.ProductSnapshot{prod.BuildSnapshot()}, nil).Times(1)

		view, err := q.ValidateCode(ctx, "save10")

		require.NoError(t, err)
		assert.True(t, view.Valid)
		require.NotNil(t, view.Code)
		assert.Equal(t, "SAVE10", view.Code.Code)
		require.Len(t, view.Products, 1)
		assert.Equal(t, int64(9000), view.Products[0].FinalPriceCents)
	})

	t.Run("unknown code yields a rejection message, not an error", func(t *testing.T) {
		q, promotions, catalog := newOfferQueries(t)

		promotions.EXPECT().ListAll(ctx).Return(nil, nil).Times(1)
		catalog.EXPECT().ListWithPromotions(ctx).Return(nil, nil).Times(1)

		view, err := q.ValidateCode(ctx, "NOPE")

		require.NoError(t, err)
		assert.False(t, view.Valid)
		assert.Equal(t, "code not found", view.Message)
		assert.Nil(t, view.Code)
	})

	t.Run("expired code reports expired message", func(t *testing.T) {
		q, promotions, catalog := newOfferQueries(t)

		expired := builder.NewPromotionBuilder(testNow).WithCode("OLD20").
			WithWindow(testNow.Add(-96*time.Hour), testNow.Add(-24*time.Hour))
		promotions.EXPECT().ListAll(ctx).
			Return([]*shared.PromotionSnapshot{expired.BuildSnapshot()}, nil).Times(1)
		catalog.EXPECT().ListWithPromotions(ctx).Return(nil, nil).Times(1)

		view, err := q.ValidateCode(ctx, "OLD20")

		require.NoError(t, err)
		assert.False(t, view.Valid)
		assert.Equal(t, "code expired or inactive", view.Message)
	})
}
