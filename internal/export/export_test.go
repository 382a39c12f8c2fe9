package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrina-app/vitrina-backend/internal/app/model"
)

func TestBuildWorkbook(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	products := []model.Product{
		{
			ID:          "p1",
			Name:        "Ceramic Mug",
			Price:       14.9,
			Category:    []string{"Kitchen", "Gifts"},
			Images:      []string{"https://img/mug.jpg"},
			Description: "Stoneware mug",
			CreatedAt:   created,
		},
	}
	reviews := []model.Review{
		{ID: "r1", UserName: "Maria", Text: "Lovely", CreatedAt: created},
	}
	categories := []model.Category{
		{ID: "c1", Name: "Kitchen", Image: "https://img/k.jpg", Description: "Tableware"},
		{ID: "c2", Name: "Gifts"},
	}

	f, err := BuildWorkbook(products, reviews, categories)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Products", "Reviews", "Categories"}, f.GetSheetList())

	rows, err := f.GetRows("Products")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Ceramic Mug", rows[1][1])
	assert.Equal(t, "Kitchen, Gifts", rows[1][5])
	assert.Equal(t, "2025-06-01T12:00:00Z", rows[1][8])

	reviewRows, err := f.GetRows("Reviews")
	require.NoError(t, err)
	require.Len(t, reviewRows, 2)
	assert.Equal(t, "Maria", reviewRows[1][1])

	categoryRows, err := f.GetRows("Categories")
	require.NoError(t, err)
	require.Len(t, categoryRows, 3)
	assert.Equal(t, "TRUE", categoryRows[1][5])
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "catalog-export-2025-06-01.xlsx", Filename(now))
}
