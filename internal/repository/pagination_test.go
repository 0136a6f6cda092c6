package repository

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

func setupPaginationTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Template{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func seedTemplates(t *testing.T, db *gorm.DB, n int, status models.EntityStatus) {
	t.Helper()

	for i := 0; i < n; i++ {
		tpl := models.Template{
			Name:    fmt.Sprintf("template-%03d", i),
			Status:  status,
			Version: 1,
		}
		require.NoError(t, db.Create(&tpl).Error)
	}
}

func TestPaginate_PagesCoverAllResultsExactlyOnce(t *testing.T) {
	db := setupPaginationTestDB(t)
	seedTemplates(t, db, 25, models.StatusActive)

	seen := make(map[uint64]struct{})
	var fetched int

	first, err := Paginate[models.Template](db, nil, PageOptions{Limit: 10, Page: 1})
	require.NoError(t, err)
	require.EqualValues(t, 25, first.TotalResults)
	require.Equal(t, 3, first.TotalPages)
	require.Equal(t, 10, first.Limit)

	for page := 1; page <= first.TotalPages; page++ {
		p, err := Paginate[models.Template](db, nil, PageOptions{Limit: 10, Page: page})
		require.NoError(t, err)
		require.LessOrEqual(t, len(p.Results), p.Limit)

		for _, tpl := range p.Results {
			_, dup := seen[tpl.ID]
			require.False(t, dup, "template %d appeared on two pages", tpl.ID)
			seen[tpl.ID] = struct{}{}
		}
		fetched += len(p.Results)
	}

	require.EqualValues(t, first.TotalResults, fetched)
}

func TestPaginate_PageBeyondEndIsEmptyNotAnError(t *testing.T) {
	db := setupPaginationTestDB(t)
	seedTemplates(t, db, 5, models.StatusActive)

	p, err := Paginate[models.Template](db, nil, PageOptions{Limit: 10, Page: 7})
	require.NoError(t, err)
	require.Empty(t, p.Results)
	require.Equal(t, 7, p.Page)
	require.EqualValues(t, 5, p.TotalResults)
	require.Equal(t, 1, p.TotalPages)
}

func TestPaginate_FilterAndDefaults(t *testing.T) {
	db := setupPaginationTestDB(t)
	seedTemplates(t, db, 8, models.StatusActive)
	seedTemplates(t, db, 4, models.StatusInvalid)

	// zero options fall back to limit 10, page 1
	p, err := Paginate[models.Template](db, map[string]any{"status": "Invalid"}, PageOptions{})
	require.NoError(t, err)
	require.Len(t, p.Results, 4)
	require.EqualValues(t, 4, p.TotalResults)
	require.Equal(t, 10, p.Limit)
	require.Equal(t, 1, p.Page)

	for _, tpl := range p.Results {
		require.Equal(t, models.StatusInvalid, tpl.Status)
	}
}

func TestPaginate_SortBy(t *testing.T) {
	db := setupPaginationTestDB(t)
	seedTemplates(t, db, 5, models.StatusActive)

	desc, err := Paginate[models.Template](db, nil, PageOptions{SortBy: "name:desc"})
	require.NoError(t, err)
	require.Equal(t, "template-004", desc.Results[0].Name)

	asc, err := Paginate[models.Template](db, nil, PageOptions{SortBy: "name:asc"})
	require.NoError(t, err)
	require.Equal(t, "template-000", asc.Results[0].Name)

	// bare field defaults to ascending
	bare, err := Paginate[models.Template](db, nil, PageOptions{SortBy: "name"})
	require.NoError(t, err)
	require.Equal(t, "template-000", bare.Results[0].Name)
}

func TestPaginate_RejectsMalformedSort(t *testing.T) {
	db := setupPaginationTestDB(t)
	seedTemplates(t, db, 1, models.StatusActive)

	_, err := Paginate[models.Template](db, nil, PageOptions{SortBy: "name:sideways"})
	require.ErrorIs(t, err, ErrInvalidSort)

	_, err = Paginate[models.Template](db, nil, PageOptions{SortBy: "name; DROP TABLE templates:asc"})
	require.ErrorIs(t, err, ErrInvalidSort)
}
