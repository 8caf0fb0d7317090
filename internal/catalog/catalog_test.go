package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/device-quote/internal/catalog"
	domain "github.com/donaldgifford/device-quote/pkg/types"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)
	assert.Positive(t, c.Len())

	d, ok := c.Get("apple-iphone-13")
	require.True(t, ok)
	assert.Equal(t, domain.CategorySmartphone, d.Category)
	assert.Contains(t, d.StorageOptions, "128GB")
	assert.Equal(t, 2021, d.ReleaseYear)

	assert.True(t, c.Contains("samsung-galaxy-z-fold-5"))
	assert.False(t, c.Contains("nokia-3310"))
}

func TestList(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter catalog.Filter
		check  func(t *testing.T, got []domain.Device)
	}{
		{
			name:   "all sorted by id",
			filter: catalog.Filter{},
			check: func(t *testing.T, got []domain.Device) {
				require.Len(t, got, c.Len())
				for i := 1; i < len(got); i++ {
					assert.Less(t, got[i-1].NormalizedID, got[i].NormalizedID)
				}
			},
		},
		{
			name:   "by brand case insensitive",
			filter: catalog.Filter{Brand: "SAMSUNG"},
			check: func(t *testing.T, got []domain.Device) {
				require.NotEmpty(t, got)
				for _, d := range got {
					assert.Equal(t, "Samsung", d.Brand)
				}
			},
		},
		{
			name:   "by category",
			filter: catalog.Filter{Category: domain.CategoryConsolePortable},
			check: func(t *testing.T, got []domain.Device) {
				require.Len(t, got, 2)
			},
		},
		{
			name:   "query is normalized",
			filter: catalog.Filter{Query: "iPhone 13"},
			check: func(t *testing.T, got []domain.Device) {
				require.Len(t, got, 2)
				assert.Equal(t, "apple-iphone-13", got[0].NormalizedID)
				assert.Equal(t, "apple-iphone-13-pro", got[1].NormalizedID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, c.List(tt.filter))
		})
	}
}

func TestBrands(t *testing.T) {
	t.Parallel()

	c, err := catalog.Parse([]byte(`
devices:
  - {brand: Samsung, model: Galaxy S23, category: smartphone}
  - {brand: Apple, model: iPhone 13, category: smartphone}
  - {brand: apple, model: iPad Air 5, category: tablet}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "samsung"}, c.Brands())
	assert.True(t, c.Contains("apple-iphone-13"), "id derived from brand and model")
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{name: "bad category", yaml: "devices:\n  - {id: x-1, category: laptop}\n", wantErr: "invalid category"},
		{name: "duplicate after normalization", yaml: "devices:\n  - {id: iphone-13, category: smartphone}\n  - {id: apple-iphone-13, category: smartphone}\n", wantErr: "duplicate"},
		{name: "no id", yaml: "devices:\n  - {category: smartphone}\n", wantErr: "required"},
		{name: "not yaml", yaml: "devices: [", wantErr: "parsing catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := catalog.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "devices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("devices:\n  - {id: google-pixel-7, brand: Google, model: Pixel 7, category: smartphone}\n"), 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = catalog.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	def, err := catalog.Load("")
	require.NoError(t, err)
	assert.Greater(t, def.Len(), 1)
}
