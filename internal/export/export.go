package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/vitrina-app/vitrina-backend/internal/app/model"
	"github.com/xuri/excelize/v2"
)

const (
	productsSheet   = "Products"
	reviewsSheet    = "Reviews"
	categoriesSheet = "Categories"
)

// BuildWorkbook lays the catalog out across three sheets for the admin
// back-office export.
func BuildWorkbook(products []model.Product, reviews []model.Review, categories []model.Category) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", productsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(reviewsSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(categoriesSheet); err != nil {
		return nil, err
	}

	if err := writeProducts(f, products); err != nil {
		return nil, err
	}
	if err := writeReviews(f, reviews); err != nil {
		return nil, err
	}
	if err := writeCategories(f, categories); err != nil {
		return nil, err
	}

	return f, nil
}

// Filename returns the dated export file name.
func Filename(now time.Time) string {
	return fmt.Sprintf("catalog-export-%s.xlsx", now.Format("2006-01-02"))
}

func writeProducts(f *excelize.File, products []model.Product) error {
	header := []interface{}{"ID", "Name", "Price", "Before Price", "Description", "Categories", "Images", "Video URL", "Created At"}
	if err := f.SetSheetRow(productsSheet, "A1", &header); err != nil {
		return err
	}

	for i, p := range products {
		row := []interface{}{
			p.ID,
			p.Name,
			p.Price,
			p.BeforePrice,
			p.Description,
			strings.Join(p.Category, ", "),
			strings.Join(p.Images, ", "),
			p.YoutubeVideoURL,
			formatTime(p.CreatedAt),
		}
		if err := f.SetSheetRow(productsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeReviews(f *excelize.File, reviews []model.Review) error {
	header := []interface{}{"ID", "User", "Text", "Images", "Created At"}
	if err := f.SetSheetRow(reviewsSheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range reviews {
		row := []interface{}{
			r.ID,
			r.UserName,
			r.Text,
			strings.Join(r.Images, ", "),
			formatTime(r.CreatedAt),
		}
		if err := f.SetSheetRow(reviewsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeCategories(f *excelize.File, categories []model.Category) error {
	header := []interface{}{"ID", "Name", "Product IDs", "Image", "Description", "Featured"}
	if err := f.SetSheetRow(categoriesSheet, "A1", &header); err != nil {
		return err
	}

	for i, c := range categories {
		row := []interface{}{
			c.ID,
			c.Name,
			strings.Join(c.ProductIDs, ", "),
			c.Image,
			c.Description,
			c.Featured(),
		}
		if err := f.SetSheetRow(categoriesSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
