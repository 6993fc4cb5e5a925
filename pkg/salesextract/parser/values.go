package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ukaji3/salesextract-go/pkg/salesextract/models"
)

// groupedNumber matches plain, thousands-grouped and currency-prefixed numbers.
var groupedNumber = regexp.MustCompile(`^[-(]?\$?-?(\d{1,3}(,\d{3})+|\d+)?(\.\d+)?\)?$`)

// inferCell types an untyped text value (CSV field, legacy xls cell).
// Numbers such as "8,678", "$1,193.05", "(12.50)" and "1.05%" become numeric cells;
// anything else stays text.
func inferCell(s string) models.Cell {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Cell{}
	}
	if v, ok := parseNumber(s); ok {
		return models.NumberCell(v)
	}
	return models.TextCell(s)
}

// parseNumber attempts to parse s as a number.
func parseNumber(s string) (float64, bool) {
	// Try the plain form first
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}

	percent := false
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	if !groupedNumber.MatchString(s) || !strings.ContainsAny(s, "0123456789") {
		return 0, false
	}

	negative := strings.Contains(s, "-") || strings.HasPrefix(s, "(")
	if strings.HasPrefix(s, "(") != strings.HasSuffix(s, ")") {
		return 0, false
	}
	cleaned := strings.NewReplacer("$", "", ",", "", "(", "", ")", "", "-", "").Replace(s)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	if percent {
		v /= 100
	}
	return v, true
}
