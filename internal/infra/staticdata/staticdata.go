// Package staticdata holds the built-in shipping zone and coupon tables.
// Both are process-wide configuration rather than database state; editing
// them is a deploy, which matches how rarely Ghana delivery fees change.
package staticdata

import (
	"vicqa-tradehub/internal/domain/coupon"
	"vicqa-tradehub/internal/domain/shipping"
)

// DefaultZones returns the delivery zone table. Each region carries a flat
// fee in GHS and the closed list of towns deliveries are accepted for.
func DefaultZones() *shipping.Resolver {
	return shipping.NewResolver([]shipping.Zone{
		shipping.NewZone("Greater Accra", 11.96, []string{
			"Accra", "Tema", "Madina", "Adenta", "Kasoa", "Teshie", "Nungua", "Dansoman",
		}),
		shipping.NewZone("Ashanti", 25.00, []string{
			"Kumasi", "Obuasi", "Ejisu", "Konongo", "Mampong",
		}),
		shipping.NewZone("Central", 0, []string{
			"Cape Coast", "Elmina", "Winneba", "Mankessim", "Saltpond",
		}),
		shipping.NewZone("Western", 30.00, []string{
			"Takoradi", "Sekondi", "Tarkwa", "Axim",
		}),
		shipping.NewZone("Eastern", 20.00, []string{
			"Koforidua", "Nsawam", "Suhum", "Akosombo",
		}),
		shipping.NewZone("Volta", 28.50, []string{
			"Ho", "Hohoe", "Keta", "Aflao",
		}),
	})
}

// DefaultCoupons returns the active coupon table.
func DefaultCoupons() *coupon.Table {
	return coupon.NewTable([]coupon.Coupon{
		newCoupon("SAVE10", coupon.KindPercentage, 10),
		newCoupon("AKWAABA", coupon.KindPercentage, 5),
		newCoupon("GHS20OFF", coupon.KindFixed, 20),
		newCoupon("FREESHIP12", coupon.KindFixed, 11.96),
	})
}

func newCoupon(code string, kind coupon.Kind, value float64) coupon.Coupon {
	c, err := coupon.NewCoupon(code, kind, value)
	if err != nil {
		panic(err) // table is compile-time data
	}
	return c
}
