package rank

import (
	"fmt"
	"math"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/honeycarbs/urban-match/internal/domain"
	"github.com/honeycarbs/urban-match/pkg/housing"
)

const (
	reasonWithinBudget   = "Within your housing budget"
	reasonNearBudget     = "Near your budget"
	reasonSlightlyAbove  = "Slightly above budget"
	reasonAboveBudget    = "Above budget, but may be useful for comparison"
	reasonPriceAvailable = "Price available"
	reasonNoPriceData    = "Price range unavailable"
)

const defaultHousingTitle = "Rental Listing"

// Housing scores raw rental listings against the profile budget. If the
// scoring pass panics for any reason, every listing is still returned
// through an unscored fallback so no section of the response is lost.
func Housing(raw []housing.Property, p domain.CanonicalProfile) (ranked []domain.RankedHousing) {
	defer func() {
		if r := recover(); r != nil {
			ranked = fallbackHousing(raw)
		}
	}()

	return scoreHousing(raw, p)
}

func scoreHousing(raw []housing.Property, p domain.CanonicalProfile) []domain.RankedHousing {
	budget := 0.0
	if p.HousingBudget > 0 {
		budget = p.HousingBudget
	}

	ranked := make([]domain.RankedHousing, 0, len(raw))
	for idx, home := range raw {
		entry := baseHousing(home, idx)

		low, high, midpoint, hasPrice := priceBounds(home)

		score := 0
		reason := reasonNoPriceData

		if budget > 0 && hasPrice {
			switch {
			case high <= budget:
				score += 80
				reason = reasonWithinBudget
			case low <= budget || midpoint <= budget*1.10:
				score += 55
				reason = reasonNearBudget
			case midpoint <= budget*1.25:
				score += 25
				reason = reasonSlightlyAbove
			default:
				score += 5
				reason = reasonAboveBudget
			}
		} else if hasPrice {
			score += 15
			reason = reasonPriceAvailable
		}

		// Soft proximity heuristic toward the target metro. The bare "st"
		// substring over-matches; the bonus never changes the match reason.
		cityLower := strings.ToLower(entry.City)
		if strings.Contains(cityLower, "st") || strings.Contains(cityLower, "saint") {
			score += 5
		}

		entry.MatchScore = score
		entry.MatchReason = reason
		ranked = append(ranked, entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}
		return effectivePrice(ranked[i]) < effectivePrice(ranked[j])
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

// fallbackHousing maps every listing to the ranked shape without scoring,
// preserving input order.
func fallbackHousing(raw []housing.Property) []domain.RankedHousing {
	out := make([]domain.RankedHousing, 0, len(raw))
	for idx, home := range raw {
		entry := baseHousing(home, idx)
		entry.MatchScore = 0
		if home.PriceMin != nil || home.PriceMax != nil {
			entry.MatchReason = reasonPriceAvailable
		} else {
			entry.MatchReason = reasonNoPriceData
		}
		out = append(out, entry)

		if len(out) == maxResults {
			break
		}
	}
	return out
}

func baseHousing(home housing.Property, idx int) domain.RankedHousing {
	id := home.ID
	if id == "" {
		id = fmt.Sprintf("home-%d", idx)
	}

	parts := make([]string, 0, 4)
	for _, part := range []string{home.Line, home.City, home.State, home.Zip} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	addressText := strings.Join(parts, ", ")
	if addressText == "" {
		addressText = "Address unavailable"
	}

	return domain.RankedHousing{
		ID:          id,
		Title:       displayTitle(home),
		AddressLine: home.Line,
		City:        home.City,
		State:       home.State,
		Zip:         home.Zip,
		AddressText: addressText,
		PriceMin:    home.PriceMin,
		PriceMax:    home.PriceMax,
		ListingURL:  optional(home.Href),
		MatchScore:  0,
		MatchReason: reasonNoPriceData,
	}
}

// displayTitle prefers the address line; otherwise it recovers a name from
// the listing URL slug (segment before the first underscore, hyphens to
// spaces).
func displayTitle(home housing.Property) string {
	if home.Line != "" {
		return home.Line
	}

	if home.Href != "" {
		if u, err := url.Parse(home.Href); err == nil {
			segment := path.Base(u.Path)
			segment, _, _ = strings.Cut(segment, "_")
			segment = strings.TrimSpace(strings.ReplaceAll(segment, "-", " "))
			if segment != "" && segment != "." && segment != "/" {
				return segment
			}
		}
	}

	return defaultHousingTitle
}

// priceBounds substitutes a missing bound with the present one.
func priceBounds(home housing.Property) (low, high, midpoint float64, hasPrice bool) {
	switch {
	case home.PriceMin != nil && home.PriceMax != nil:
		low, high = *home.PriceMin, *home.PriceMax
	case home.PriceMin != nil:
		low, high = *home.PriceMin, *home.PriceMin
	case home.PriceMax != nil:
		low, high = *home.PriceMax, *home.PriceMax
	default:
		return 0, 0, 0, false
	}

	return low, high, (low + high) / 2, true
}

// effectivePrice orders equal-score listings; no price sorts last.
func effectivePrice(h domain.RankedHousing) float64 {
	if h.PriceMin != nil {
		return *h.PriceMin
	}
	if h.PriceMax != nil {
		return *h.PriceMax
	}
	return math.MaxFloat64
}
