package salesextract

import "github.com/ukaji3/salesextract-go/pkg/salesextract/models"

// Aggregate sums every numeric field of records into a totals row.
// It returns false when records is empty.
func Aggregate(records []models.StoreRecord) (models.StoreRecord, bool) {
	if len(records) == 0 {
		return models.StoreRecord{}, false
	}

	totals := models.StoreRecord{
		Filename:     models.TotalsFilename,
		Month:        models.TotalsMonth,
		StoreAddress: models.TotalsAddress,
	}
	for _, rec := range records {
		totals = totals.Add(rec)
	}
	return totals, true
}
