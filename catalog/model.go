package catalog

import "github.com/kbukum/storefront/database"

// Product is a catalog entry.
type Product struct {
	database.BaseModel
	Name         string  `gorm:"uniqueIndex;not null" json:"name"`
	Slug         string  `gorm:"uniqueIndex;not null" json:"slug"`
	Image        string  `gorm:"not null" json:"image"`
	Brand        string  `gorm:"not null" json:"brand"`
	Category     string  `gorm:"not null" json:"category"`
	Description  string  `gorm:"not null" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	CountInStock int     `gorm:"not null" json:"countInStock"`
	Rating       float64 `gorm:"not null" json:"rating"`
	NumReviews   int     `gorm:"not null" json:"numReviews"`
}

// InStock reports whether quantity units can be supplied.
func (p Product) InStock(quantity int) bool {
	return quantity >= 1 && quantity <= p.CountInStock
}
