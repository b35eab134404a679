package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Keywords(t *testing.T) {
	c := Default()

	t.Run("MappedCategoryIsCaseInsensitive", func(t *testing.T) {
		pool, ok := c.Keywords("  technology ")
		require.True(t, ok)
		assert.Contains(t, pool, "circuit board")
	})

	t.Run("UnmappedCategoryFallsBackToGeneric", func(t *testing.T) {
		_, ok := c.Keywords("Knitting")
		assert.False(t, ok)
		assert.Equal(t, c.Generic(), c.Pool("Knitting"))
	})
}

func TestNew_DropsBlankEntries(t *testing.T) {
	c := New(map[string][]string{
		"Empty": {"", "  "},
		"  ":    {"ignored"},
		"Music": {" guitar ", ""},
	}, nil)

	_, ok := c.Keywords("Empty")
	assert.False(t, ok, "category with only blank keywords is unusable")

	pool, ok := c.Keywords("music")
	require.True(t, ok)
	assert.Equal(t, []string{"guitar"}, pool)
	assert.Equal(t, 2, c.Len())
	assert.Empty(t, c.Pool("Empty"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	data := `
generic = ["paper texture"]

[categories]
Gardening = ["greenhouse", "watering can"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	pool, ok := c.Keywords("GARDENING")
	require.True(t, ok)
	assert.Equal(t, []string{"greenhouse", "watering can"}, pool)
	assert.Equal(t, []string{"paper texture"}, c.Generic())

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
