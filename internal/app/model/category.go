package model

// Category groups products by name. ProductIDs is stored and served but
// is not authoritative: actual membership is derived from each product's
// category name list. Deletes never cascade in either direction.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ProductIDs  []string `json:"productIds"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
}

// CategoryRecord is the flat stored representation under categories/{id}.
type CategoryRecord struct {
	Name        string   `json:"name"`
	ProductIDs  []string `json:"productIds,omitempty"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (r CategoryRecord) Normalize(id string) Category {
	c := Category{
		ID:          id,
		Name:        r.Name,
		ProductIDs:  r.ProductIDs,
		Image:       r.Image,
		Description: r.Description,
	}
	if c.ProductIDs == nil {
		c.ProductIDs = []string{}
	}
	return c
}

func NewCategoryRecord(c Category) CategoryRecord {
	return CategoryRecord{
		Name:        c.Name,
		ProductIDs:  emptyIfNil(c.ProductIDs),
		Image:       c.Image,
		Description: c.Description,
	}
}

// Featured reports whether the category qualifies for the landing view:
// it needs both an image and a description.
func (c Category) Featured() bool {
	return c.Image != "" && c.Description != ""
}
