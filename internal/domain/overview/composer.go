// Package overview builds the best-effort "life overview" narrative from
// ranked results and hidden-gems proximity. Every enrichment step may
// fail; failures only reduce detail, never the request.
package overview

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/honeycarbs/urban-match/internal/domain"
	"github.com/honeycarbs/urban-match/pkg/gems"
	"github.com/honeycarbs/urban-match/pkg/geo"
	"github.com/honeycarbs/urban-match/pkg/logging"
)

// maxGems caps how many coordinate-bearing places feed the distance math.
const maxGems = 8

// nearbyMiles is the radius for the "close by" gem count.
const nearbyMiles = 3.0

// maxTopJobs caps the job titles surfaced in the overview.
const maxTopJobs = 3

// Geocoder resolves a free-text address to a coordinate pair.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geo.Point, error)
}

// Input bundles everything the composer reads.
type Input struct {
	Profile domain.CanonicalProfile
	Gems    *gems.Response
	Jobs    []domain.RankedJob
	Housing []domain.RankedHousing
}

// Composer assembles LifeOverview values.
type Composer struct {
	geocoder Geocoder
	logger   *logging.Logger
}

// NewComposer builds a Composer. The geocoder may be nil, which disables
// proximity enrichment entirely.
func NewComposer(geocoder Geocoder, logger *logging.Logger) *Composer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Composer{geocoder: geocoder, logger: logger}
}

// Compose builds the overview. It never fails: every missing input or
// upstream hiccup degrades to an absent field.
func (c *Composer) Compose(ctx context.Context, in Input) domain.LifeOverview {
	out := domain.LifeOverview{
		Highlights:   []string{},
		TopJobTitles: topJobTitles(in.Jobs),
	}

	var top *domain.RankedHousing
	if len(in.Housing) > 0 {
		top = &in.Housing[0]
		out.RecommendedHousingID = &top.ID
		out.RecommendedHousingTitle = &top.Title
	}

	if top != nil && in.Profile.HousingBudget > 0 {
		budget := in.Profile.HousingBudget
		switch {
		case top.PriceMax != nil && *top.PriceMax <= budget:
			out.Highlights = append(out.Highlights,
				fmt.Sprintf("%s fits within your $%.0f housing budget", top.Title, budget))
		case top.PriceMin != nil && *top.PriceMin <= budget:
			out.Highlights = append(out.Highlights,
				fmt.Sprintf("%s starts within your $%.0f housing budget", top.Title, budget))
		}
	}

	points := gemPoints(in.Gems)

	var gemSentence string
	if top != nil && len(points) > 0 && c.geocoder != nil {
		if origin, err := c.geocoder.Geocode(ctx, top.AddressText); err != nil {
			c.logger.Debug("geocoding skipped, overview keeps no distance data", "err", err)
		} else {
			avg, within := proximity(origin, points)
			out.AvgGemDistanceMiles = &avg
			out.GemsWithinThreeMiles = &within

			if within > 0 {
				out.Highlights = append(out.Highlights,
					fmt.Sprintf("%d of your kind of spots are within 3 miles", within))
				gemSentence = fmt.Sprintf("%d hidden gems sit within 3 miles of that address.", within)
			} else {
				out.Highlights = append(out.Highlights,
					fmt.Sprintf("Your kind of spots average %.1f miles away", avg))
				gemSentence = fmt.Sprintf("Hidden gems in your categories average %.1f miles away.", avg)
			}
		}
	}

	if len(out.TopJobTitles) >= 2 {
		out.Highlights = append(out.Highlights,
			fmt.Sprintf("Strong job matches nearby: %s and %s", out.TopJobTitles[0], out.TopJobTitles[1]))
	} else if len(out.TopJobTitles) == 1 {
		out.Highlights = append(out.Highlights,
			fmt.Sprintf("Strong job match nearby: %s", out.TopJobTitles[0]))
	}

	out.Narrative = narrative(top, gemSentence, out.TopJobTitles)
	return out
}

// topJobTitles returns up to three titles in rank order.
func topJobTitles(jobs []domain.RankedJob) []string {
	titles := make([]string, 0, maxTopJobs)
	for _, job := range jobs {
		if job.Title == "" {
			continue
		}
		titles = append(titles, job.Title)
		if len(titles) == maxTopJobs {
			break
		}
	}
	return titles
}

// gemPoints flattens the category buckets into at most maxGems
// coordinate-bearing places. Buckets are walked in the upstream's
// preference order so the cap is deterministic.
func gemPoints(resp *gems.Response) []geo.Point {
	if resp == nil {
		return nil
	}

	var categories []string
	seen := make(map[string]bool)
	for _, c := range resp.Preferences {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	var extras []string
	for c := range resp.Results {
		if !seen[c] {
			extras = append(extras, c)
		}
	}
	sort.Strings(extras)
	categories = append(categories, extras...)

	var points []geo.Point
	for _, category := range categories {
		for _, place := range resp.Results[category] {
			if place.Lat == nil || place.Lng == nil {
				continue
			}
			points = append(points, geo.Point{Lat: *place.Lat, Lng: *place.Lng})
			if len(points) == maxGems {
				return points
			}
		}
	}
	return points
}

// proximity returns the average distance in miles (rounded to one
// decimal) and the count of points within nearbyMiles.
func proximity(origin geo.Point, points []geo.Point) (avg float64, within int) {
	total := 0.0
	for _, pt := range points {
		d := geo.MilesBetween(origin, pt)
		total += d
		if d <= nearbyMiles {
			within++
		}
	}

	avg = math.Round(total/float64(len(points))*10) / 10
	return avg, within
}

// narrative stitches two to three sentences out of whatever survived.
func narrative(top *domain.RankedHousing, gemSentence string, jobTitles []string) string {
	var sentences []string

	if top != nil {
		sentences = append(sentences,
			fmt.Sprintf("Start with %s: %s.", top.Title, lowerFirst(top.MatchReason)))
	} else {
		sentences = append(sentences,
			"We could not settle on a housing pick yet, so keep an eye on the listings below.")
	}

	if gemSentence != "" {
		sentences = append(sentences, gemSentence)
	}

	switch {
	case len(jobTitles) >= 2:
		sentences = append(sentences,
			fmt.Sprintf("On the career front, %s and %s look like the strongest fits.", jobTitles[0], jobTitles[1]))
	case len(jobTitles) == 1:
		sentences = append(sentences,
			fmt.Sprintf("On the career front, %s looks like the strongest fit.", jobTitles[0]))
	default:
		sentences = append(sentences,
			"Job matches were thin this time, so consider broadening your preferred roles.")
	}

	return strings.Join(sentences, " ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
