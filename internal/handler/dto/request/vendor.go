package request

type RegisterVendorRequest struct {
	Name      string `json:"name" binding:"required"`
	StoreName string `json:"store_name" binding:"required"`
}

type SetVendorStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active pending suspended"`
}

type AdvanceOrderRequest struct {
	Status string `json:"status" binding:"required,oneof=processing shipped delivered"`
}
