package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/urban-match/internal/domain"
)

func TestNormalizeDefaults(t *testing.T) {
	got := Normalize(domain.RawProfile{})

	assert.Equal(t, domain.CanonicalProfile{
		FullName:       "",
		ExpectedSalary: 0,
		PreferredJobs:  []string{},
		Interests:      []string{},
		FamilySize:     1,
		MonthlyDebt:    0,
		HousingBudget:  0,
		RentOrOwn:      domain.TenureRent,
	}, got)
}

func TestNormalizeCoercion(t *testing.T) {
	tests := []struct {
		name  string
		raw   domain.RawProfile
		check func(t *testing.T, p domain.CanonicalProfile)
	}{
		{
			name: "numeric string salary",
			raw:  domain.RawProfile{ExpectedSalary: "60000"},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, 60000.0, p.ExpectedSalary)
			},
		},
		{
			name: "non-numeric salary becomes zero",
			raw:  domain.RawProfile{ExpectedSalary: "a lot"},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, 0.0, p.ExpectedSalary)
			},
		},
		{
			name: "non-numeric family size keeps default one",
			raw:  domain.RawProfile{FamilySize: map[string]any{"adults": 2}},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, 1.0, p.FamilySize)
			},
		},
		{
			name: "null list becomes empty list",
			raw:  domain.RawProfile{PreferredJobs: nil},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, []string{}, p.PreferredJobs)
			},
		},
		{
			name: "scalar instead of list becomes empty list",
			raw:  domain.RawProfile{Interests: "coffee"},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, []string{}, p.Interests)
			},
		},
		{
			name: "mixed list keeps scalars in order",
			raw:  domain.RawProfile{Interests: []any{"coffee", 7.0, map[string]any{}, "parks"}},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, []string{"coffee", "7", "parks"}, p.Interests)
			},
		},
		{
			name: "own tenure kept",
			raw:  domain.RawProfile{RentOrOwn: "own"},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, domain.TenureOwn, p.RentOrOwn)
			},
		},
		{
			name: "unknown tenure becomes rent",
			raw:  domain.RawProfile{RentOrOwn: "OWN"},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, domain.TenureRent, p.RentOrOwn)
			},
		},
		{
			name: "numeric full name stringified",
			raw:  domain.RawProfile{FullName: 42.0},
			check: func(t *testing.T, p domain.CanonicalProfile) {
				assert.Equal(t, "42", p.FullName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	canonical := domain.CanonicalProfile{
		FullName:       "Ada Lovelace",
		ExpectedSalary: 85000,
		PreferredJobs:  []string{"analyst"},
		Interests:      []string{"museums", "coffee"},
		FamilySize:     3,
		MonthlyDebt:    450,
		HousingBudget:  1800,
		RentOrOwn:      domain.TenureOwn,
	}

	again := Normalize(domain.RawProfile{
		FullName:       canonical.FullName,
		ExpectedSalary: canonical.ExpectedSalary,
		PreferredJobs:  canonical.PreferredJobs,
		Interests:      canonical.Interests,
		FamilySize:     canonical.FamilySize,
		MonthlyDebt:    canonical.MonthlyDebt,
		HousingBudget:  canonical.HousingBudget,
		RentOrOwn:      string(canonical.RentOrOwn),
	})

	assert.Equal(t, canonical, again)
}

func TestNormalizeFromDecodedJSON(t *testing.T) {
	var raw domain.RawProfile
	require.NoError(t, json.Unmarshal([]byte(`{
		"fullName": "Sam",
		"expectedSalary": "72000",
		"preferredJobs": ["nurse", 3],
		"interests": null,
		"familySize": "not a number",
		"housingBudget": 1500.5
	}`), &raw))

	p := Normalize(raw)
	assert.Equal(t, "Sam", p.FullName)
	assert.Equal(t, 72000.0, p.ExpectedSalary)
	assert.Equal(t, []string{"nurse", "3"}, p.PreferredJobs)
	assert.Equal(t, []string{}, p.Interests)
	assert.Equal(t, 1.0, p.FamilySize)
	assert.Equal(t, 1500.5, p.HousingBudget)
}
