package response

import (
	"vicqa-tradehub/internal/usecase/queries"
)

type ProductResponse struct {
	ID          string   `json:"id"`
	VendorID    string   `json:"vendor_id"`
	StoreName   string   `json:"store_name"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features,omitempty"`
	CreatedAt   int64    `json:"created_at"`
	UpdatedAt   int64    `json:"updated_at"`
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return &ProductResponse{
		ID:          v.ID.String(),
		VendorID:    v.VendorID.String(),
		StoreName:   v.StoreName,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price,
		Category:    v.Category,
		ImageURL:    v.ImageURL,
		Features:    v.Features,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

func FromProductList(items []*queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(items))
	for i, it := range items {
		res[i] = FromProductView(it)
	}
	return res
}

type ZoneResponse struct {
	Region string   `json:"region"`
	Fee    float64  `json:"fee"`
	Towns  []string `json:"towns"`
}
