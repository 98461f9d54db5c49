package database

import (
	"path/filepath"
	"testing"

	"council-portal-api/internal/models"

	"github.com/stretchr/testify/require"
)

func TestOpenMigrateSeed(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "portal.db"), false)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	n, err := Seed(db)
	require.NoError(t, err)
	require.Positive(t, n)

	var services []models.ServiceRecord
	require.NoError(t, db.Preload("Category").Preload("Documents").Find(&services).Error)
	require.Len(t, services, len(seedServices))
	for _, s := range services {
		require.NotNil(t, s.Category, s.ID)
		require.NotEmpty(t, s.Documents, s.ID)
	}

	var staff int64
	require.NoError(t, db.Model(&models.DepartmentStaff{}).Where("department_id = ?", "engineering").Count(&staff).Error)
	require.EqualValues(t, 4, staff)
}

func TestSeed_Idempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "portal.db"), false)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	_, err = Seed(db)
	require.NoError(t, err)
	n, err := Seed(db)
	require.NoError(t, err)
	require.Zero(t, n)

	var news int64
	require.NoError(t, db.Model(&models.NewsItem{}).Count(&news).Error)
	require.EqualValues(t, len(seedNews), news)
}
