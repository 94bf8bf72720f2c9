package request

import (
	"vicqa-tradehub/internal/usecase/commands"
)

type ProductRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"min=0"`
	Category    string   `json:"category" binding:"required"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features" binding:"max=20"`
}

func (r *ProductRequest) ToParams() commands.ProductParams {
	return commands.ProductParams{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		Features:    r.Features,
	}
}
