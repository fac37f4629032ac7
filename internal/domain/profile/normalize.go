// Package profile normalizes inbound user profiles and derives the
// hidden-gems preference categories from free-text interests.
package profile

import (
	"math"
	"strconv"
	"strings"

	"github.com/honeycarbs/urban-match/internal/domain"
)

// Normalize coerces a loosely-typed profile into a fully-defaulted
// canonical one. It is total: no input shape can make it fail, and no
// field of the result is ever left unset.
func Normalize(raw domain.RawProfile) domain.CanonicalProfile {
	return domain.CanonicalProfile{
		FullName:       toString(raw.FullName),
		ExpectedSalary: toNumber(raw.ExpectedSalary, 0),
		PreferredJobs:  toStringList(raw.PreferredJobs),
		Interests:      toStringList(raw.Interests),
		FamilySize:     toNumber(raw.FamilySize, 1),
		MonthlyDebt:    toNumber(raw.MonthlyDebt, 0),
		HousingBudget:  toNumber(raw.HousingBudget, 0),
		RentOrOwn:      toTenure(raw.RentOrOwn),
	}
}

// toNumber coerces to float64. Missing or non-numeric values take the
// field default; NaN and infinities count as non-numeric.
func toNumber(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		return f
	default:
		return def
	}
}

// toString coerces scalars to text; anything else becomes empty.
func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// toStringList coerces to a list of strings. Non-list input becomes an
// empty list; non-scalar elements are skipped.
func toStringList(v any) []string {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			switch item.(type) {
			case string, float64, int, bool:
				out = append(out, toString(item))
			}
		}
		return out
	default:
		return []string{}
	}
}

// toTenure accepts only the literal "own"; everything else is rent.
func toTenure(v any) domain.Tenure {
	if s, ok := v.(string); ok && s == string(domain.TenureOwn) {
		return domain.TenureOwn
	}
	return domain.TenureRent
}
