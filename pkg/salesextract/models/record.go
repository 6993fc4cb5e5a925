package models

import "github.com/shopspring/decimal"

const (
	// AddressNotFound is the address of a store missing from the address table.
	AddressNotFound = "Address not found"

	TotalsMonth    = "TOTAL"
	TotalsAddress  = "All Stores Combined"
	TotalsFilename = "TOTALS"
)

// StoreRecord holds the figures extracted from one sales summary file.
// The totals row shares the same shape.
type StoreRecord struct {
	// Filename is the source file name.
	Filename string `json:"filename"`
	// Month is the reporting month, e.g. "April 2025". Empty when not found.
	Month string `json:"month"`
	// StoreNumber is the 5-digit store number. Empty when not found.
	StoreNumber string `json:"store_number"`
	// StoreAddress is resolved from the store address table.
	StoreAddress string `json:"store_address"`

	DairyQueen  decimal.Decimal `json:"dairy_queen"`
	DQFood      decimal.Decimal `json:"dq_food"`
	Beverages   decimal.Decimal `json:"beverages"`
	Breakfast   decimal.Decimal `json:"breakfast"`
	Cakes       decimal.Decimal `json:"cakes"`
	OJBeverages decimal.Decimal `json:"oj_beverages"`

	// TransactionCount is the order count reported by the source.
	TransactionCount int64 `json:"transaction_count"`
	// NetSalesWithDonations is the net sales figure reported by the source.
	NetSalesWithDonations decimal.Decimal `json:"net_sales_with_donations"`
	// TotalSales is the larger of the revenue bucket sum and NetSalesWithDonations.
	TotalSales decimal.Decimal `json:"total_sales"`
}

// IsTotals reports whether the record is the aggregated totals row.
func (r StoreRecord) IsTotals() bool {
	return r.Filename == TotalsFilename && r.Month == TotalsMonth
}

// Add returns the field-wise sum of the numeric fields of r and o.
// Identity fields are taken from r.
func (r StoreRecord) Add(o StoreRecord) StoreRecord {
	r.DairyQueen = r.DairyQueen.Add(o.DairyQueen)
	r.DQFood = r.DQFood.Add(o.DQFood)
	r.Beverages = r.Beverages.Add(o.Beverages)
	r.Breakfast = r.Breakfast.Add(o.Breakfast)
	r.Cakes = r.Cakes.Add(o.Cakes)
	r.OJBeverages = r.OJBeverages.Add(o.OJBeverages)
	r.TransactionCount += o.TransactionCount
	r.NetSalesWithDonations = r.NetSalesWithDonations.Add(o.NetSalesWithDonations)
	r.TotalSales = r.TotalSales.Add(o.TotalSales)
	return r
}
