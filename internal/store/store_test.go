package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go-retail-pos/internal/models"
)

// newTestStore opens a fresh on-disk database in a temp dir, without the
// demo catalog so tests start from an empty inventory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := open(filepath.Join(t.TempDir(), "pos.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.db")

	s, err := open(path, false)
	require.NoError(t, err)
	require.NoError(t, s.SetSetting(SettingBusinessName, "Bodega Carmen"))
	require.NoError(t, s.Close())

	// Reopening must re-run migrations as a no-op and keep the data.
	s, err = open(path, false)
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, "Bodega Carmen", s.GetSetting(SettingBusinessName, ""))

	var applied []schemaMigration
	require.NoError(t, s.db.Find(&applied).Error)
	require.Len(t, applied, len(migrations))
}

func TestDemoDataSeedsOnlyEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pos.db")

	s, err := open(path, true)
	require.NoError(t, err)

	products, err := s.ListProducts()
	require.NoError(t, err)
	require.NotEmpty(t, products)
	seeded := len(products)

	// Delete one product and reopen: the seed must not run again.
	require.NoError(t, s.DeleteProduct(products[0].ID))
	require.NoError(t, s.Close())

	s, err = open(path, true)
	require.NoError(t, err)
	defer s.Close()

	products, err = s.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, seeded-1)
}

func TestEnsureAdminUser(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureAdminUser("admin", "admin123"))

	user, err := s.FindUserByUsername("admin")
	require.NoError(t, err)
	require.Equal(t, "admin", user.Role)
	require.NotEqual(t, "admin123", user.PasswordHash)

	// Second call is a no-op while any user exists.
	require.NoError(t, s.EnsureAdminUser("other", "pw"))
	_, err = s.FindUserByUsername("other")
	require.Error(t, err)

	var count int64
	require.NoError(t, s.db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
