package seed

import "github.com/kbukum/storefront/catalog"

// Products returns the sample catalog.
func Products() []catalog.Product {
	return []catalog.Product{
		{
			Name:         "aastin-tshirt",
			Slug:         "aastin-tshirt",
			Category:     "Shirts",
			Image:        "/images/aastin-tshirt.jpg",
			Price:        120,
			CountInStock: 10,
			Brand:        "AP",
			Rating:       4.5,
			NumReviews:   10,
			Description:  "high quality shirt",
		},
		{
			Name:         "Denial-cap",
			Slug:         "Denial-cap",
			Category:     "Shirts",
			Image:        "/images/Denial-cap.jpg",
			Price:        250,
			CountInStock: 20,
			Brand:        "AP",
			Rating:       4.0,
			NumReviews:   10,
			Description:  "high quality product",
		},
		{
			Name:         "Denial-tshirt",
			Slug:         "Denial-tshirt",
			Category:     "Shirts",
			Image:        "/images/Denial-tshirt.jpg",
			Price:        25,
			CountInStock: 15,
			Brand:        "AP",
			Rating:       4.5,
			NumReviews:   14,
			Description:  "high quality product",
		},
		{
			Name:         "sink-tshirt",
			Slug:         "sink-tshirt",
			Category:     "Shirts",
			Image:        "/images/sink-tshirt.jpg",
			Price:        65,
			CountInStock: 5,
			Brand:        "AP",
			Rating:       4.5,
			NumReviews:   10,
			Description:  "high quality product",
		},
	}
}
