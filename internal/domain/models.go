// Package domain holds the request-scoped value types of the
// recommendation aggregator. Nothing here survives a request.
package domain

import "github.com/honeycarbs/urban-match/pkg/gems"

// Tenure is the housing tenure goal.
type Tenure string

const (
	TenureRent Tenure = "rent"
	TenureOwn  Tenure = "own"
)

// Preference is one of the six supported hidden-gems categories.
type Preference string

const (
	PreferenceRestaurants     Preference = "restaurants"
	PreferenceNightlife       Preference = "nightlife"
	PreferenceBrunch          Preference = "brunch"
	PreferenceSports          Preference = "sports"
	PreferenceShopping        Preference = "shopping"
	PreferenceParksRecreation Preference = "parks_recreation"
)

// SupportedPreferences is the closed category set, in canonical order.
func SupportedPreferences() []Preference {
	return []Preference{
		PreferenceRestaurants,
		PreferenceNightlife,
		PreferenceBrunch,
		PreferenceSports,
		PreferenceShopping,
		PreferenceParksRecreation,
	}
}

// RawProfile is the loosely-typed inbound profile. Every field may be
// missing or carry the wrong JSON type; normalization is total over it.
type RawProfile struct {
	FullName       any `json:"fullName"`
	ExpectedSalary any `json:"expectedSalary"`
	PreferredJobs  any `json:"preferredJobs"`
	Interests      any `json:"interests"`
	FamilySize     any `json:"familySize"`
	MonthlyDebt    any `json:"monthlyDebt"`
	HousingBudget  any `json:"housingBudget"`
	RentOrOwn      any `json:"rentOrOwn"`
}

// CanonicalProfile is the fully-defaulted, correctly-typed profile every
// ranking stage works against. Immutable once built.
type CanonicalProfile struct {
	FullName       string   `json:"fullName"`
	ExpectedSalary float64  `json:"expectedSalary"`
	PreferredJobs  []string `json:"preferredJobs"`
	Interests      []string `json:"interests"`
	FamilySize     float64  `json:"familySize"`
	MonthlyDebt    float64  `json:"monthlyDebt"`
	HousingBudget  float64  `json:"housingBudget"`
	RentOrOwn      Tenure   `json:"rentOrOwn"`
}

// RankedJob is a scored job listing.
type RankedJob struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Location           string   `json:"location"`
	SalaryMin          *float64 `json:"salaryMin"`
	SalaryMax          *float64 `json:"salaryMax"`
	ApplyURL           *string  `json:"applyUrl"`
	DescriptionSnippet *string  `json:"descriptionSnippet"`
	ContractType       *string  `json:"contractType"`
	ContractTime       *string  `json:"contractTime"`
	MatchScore         int      `json:"matchScore"`
	MatchReason        string   `json:"matchReason"`
}

// RankedHousing is a scored rental listing.
type RankedHousing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	AddressLine string   `json:"addressLine"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Zip         string   `json:"zip"`
	AddressText string   `json:"addressText"`
	PriceMin    *float64 `json:"priceMin"`
	PriceMax    *float64 `json:"priceMax"`
	ListingURL  *string  `json:"listingUrl"`
	MatchScore  int      `json:"matchScore"`
	MatchReason string   `json:"matchReason"`
}

// LifeOverview is the best-effort narrative synthesis of the ranked
// results. Missing enrichment leaves the nullable fields nil.
type LifeOverview struct {
	Narrative               string   `json:"narrative"`
	Highlights              []string `json:"highlights"`
	RecommendedHousingID    *string  `json:"recommendedHousingId"`
	RecommendedHousingTitle *string  `json:"recommendedHousingTitle"`
	AvgGemDistanceMiles     *float64 `json:"avgGemDistanceMiles"`
	GemsWithinThreeMiles    *int     `json:"gemsWithinThreeMiles"`
	TopJobTitles            []string `json:"topJobTitles"`
}

// ServiceStatus tags a response section in meta.services.
type ServiceStatus string

const (
	ServiceOK    ServiceStatus = "ok"
	ServiceEmpty ServiceStatus = "empty_or_unavailable"
)

// ServiceStatuses reports the outcome of each upstream section.
type ServiceStatuses struct {
	HiddenGems ServiceStatus `json:"hiddenGems"`
	Jobs       ServiceStatus `json:"jobs"`
	Housing    ServiceStatus `json:"housing"`
}

// Meta carries response metadata.
type Meta struct {
	City               string          `json:"city"`
	GeneratedAt        string          `json:"generatedAt"`
	DerivedPreferences []Preference    `json:"derivedPreferences"`
	Services           ServiceStatuses `json:"services"`
}

// Recommendation is the full aggregated response payload.
type Recommendation struct {
	Profile      CanonicalProfile `json:"profile"`
	HiddenGems   *gems.Response   `json:"hiddenGems"`
	Jobs         []RankedJob      `json:"jobs"`
	Housing      []RankedHousing  `json:"housing"`
	LifeOverview LifeOverview     `json:"lifeOverview"`
	Meta         Meta             `json:"meta"`
}
