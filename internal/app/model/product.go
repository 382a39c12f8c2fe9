package model

import "time"

// Product is a catalog entry. Category holds category names, not ids;
// membership is by name so renaming a category does not cascade here.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	BeforePrice     float64   `json:"beforePrice,omitempty"`
	Description     string    `json:"description"`
	Category        []string  `json:"category"`
	Images          []string  `json:"images"`
	YoutubeVideoURL string    `json:"youtubeVideoUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ProductRecord is the flat stored representation under products/{id}.
type ProductRecord struct {
	Name            string   `json:"name"`
	Price           float64  `json:"price"`
	BeforePrice     float64  `json:"beforePrice,omitempty"`
	Description     string   `json:"description"`
	Category        []string `json:"category,omitempty"`
	Images          []string `json:"images,omitempty"`
	YoutubeVideoURL string   `json:"youtubeVideoUrl,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}

// Normalize merges the stored key as the id and applies the read-side
// defaults: empty slices for category/images, falsy optional fields
// dropped, createdAt parsed from its stored string form.
func (r ProductRecord) Normalize(id string) Product {
	p := Product{
		ID:          id,
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		Images:      r.Images,
		CreatedAt:   ParseTimestamp(r.CreatedAt),
	}
	if p.Category == nil {
		p.Category = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if r.BeforePrice > 0 {
		p.BeforePrice = r.BeforePrice
	}
	if r.YoutubeVideoURL != "" {
		p.YoutubeVideoURL = r.YoutubeVideoURL
	}
	return p
}

// NewProductRecord builds the stored representation of a product being
// created, stamping createdAt with the given time.
func NewProductRecord(p Product, createdAt time.Time) ProductRecord {
	return ProductRecord{
		Name:            p.Name,
		Price:           p.Price,
		BeforePrice:     p.BeforePrice,
		Description:     p.Description,
		Category:        emptyIfNil(p.Category),
		Images:          emptyIfNil(p.Images),
		YoutubeVideoURL: p.YoutubeVideoURL,
		CreatedAt:       FormatTimestamp(createdAt),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
