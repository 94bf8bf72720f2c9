package response

import (
	"vicqa-tradehub/internal/usecase/queries"
)

type VendorResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	StoreName   string `json:"store_name"`
	Status      string `json:"status"`
	MemberSince int64  `json:"member_since"`
}

func FromVendorView(v *queries.VendorView) *VendorResponse {
	return &VendorResponse{
		ID:          v.ID.String(),
		UserID:      v.UserID.String(),
		Name:        v.Name,
		StoreName:   v.StoreName,
		Status:      v.Status,
		MemberSince: v.MemberSince.Unix(),
	}
}

func FromVendorList(items []*queries.VendorView) []*VendorResponse {
	res := make([]*VendorResponse, len(items))
	for i, it := range items {
		res[i] = FromVendorView(it)
	}
	return res
}
