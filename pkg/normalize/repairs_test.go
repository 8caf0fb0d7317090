package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/device-quote/pkg/normalize"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

func TestOfferedRepairs(t *testing.T) {
	t.Parallel()

	ident := domain.DeviceIdentity{Brand: "apple", NormalizedID: "apple-iphone-13"}
	rows := []domain.RepairPriceRecord{
		row("screen", "original", -1),
		row("battery", "", 60),
		row("speaker", "", 0),
		row("screen", "generic", 90),
	}

	got := normalize.OfferedRepairs(ident, rows)
	require.Len(t, got, 3)

	assert.Equal(t, "battery", got[0].IssueID)
	assert.InDelta(t, 60.0, got[0].Price, 0.001)
	assert.False(t, got[0].PriceOnRequest)

	assert.Equal(t, "screen", got[1].IssueID)
	assert.Equal(t, "generic", got[1].Variants.Quality)

	assert.Equal(t, "speaker", got[2].IssueID)
	assert.True(t, got[2].PriceOnRequest, "zero price is contact for price, never hidden")
}

func TestOfferedRepairs_FoldableExemption(t *testing.T) {
	t.Parallel()

	inner := domain.RepairPriceRecord{
		IssueID:  "screen",
		Variants: domain.Variants{Quality: "original", Position: "inner"},
		Price:    -1,
	}

	t.Run("foldable keeps inner screen", func(t *testing.T) {
		t.Parallel()
		ident := domain.DeviceIdentity{Brand: "samsung", NormalizedID: "samsung-galaxy-z-fold-5"}
		got := normalize.OfferedRepairs(ident, []domain.RepairPriceRecord{inner})
		require.Len(t, got, 1)
		assert.True(t, got[0].PriceOnRequest)
		assert.Zero(t, got[0].Price)
	})

	t.Run("non foldable hides it", func(t *testing.T) {
		t.Parallel()
		ident := domain.DeviceIdentity{Brand: "samsung", NormalizedID: "samsung-galaxy-s23"}
		got := normalize.OfferedRepairs(ident, []domain.RepairPriceRecord{inner})
		assert.Empty(t, got)
	})
}

func TestContactItems(t *testing.T) {
	t.Parallel()

	n := normalize.ContactItems([]domain.RepairPriceRecord{
		row("battery", "", 0),
		row("speaker", "", 0),
		row("screen", "", 90),
		row("camera", "", -1),
	})
	assert.Equal(t, 2, n)
}
