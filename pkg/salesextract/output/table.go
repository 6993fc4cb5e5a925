package output

import (
	"strconv"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
)

// Headers are the summary table columns.
var Headers = []string{
	"Store #",
	"Address",
	"Dairy Queen",
	"DQ Food",
	"Beverages",
	"Breakfast",
	"Cakes",
	"OJ Beverages",
	"Transactions",
	"Net Sales",
	"Total Sales",
	"Month",
	"File",
}

// tableRow renders a record as summary table cells. Amounts keep two decimals.
func tableRow(r models.StoreRecord) []string {
	return []string{
		r.StoreNumber,
		r.StoreAddress,
		r.DairyQueen.StringFixed(2),
		r.DQFood.StringFixed(2),
		r.Beverages.StringFixed(2),
		r.Breakfast.StringFixed(2),
		r.Cakes.StringFixed(2),
		r.OJBeverages.StringFixed(2),
		strconv.FormatInt(r.TransactionCount, 10),
		r.NetSalesWithDonations.StringFixed(2),
		r.TotalSales.StringFixed(2),
		r.Month,
		r.Filename,
	}
}
