package rank

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/urban-match/internal/domain"
	"github.com/honeycarbs/urban-match/pkg/jobsearch"
)

const testCity = "St Louis, MO"

func f64(v float64) *float64 { return &v }

func TestJobsNurseScenario(t *testing.T) {
	profile := domain.CanonicalProfile{
		PreferredJobs:  []string{"nurse"},
		ExpectedSalary: 60000,
	}
	raw := []jobsearch.Job{{
		Title:        "Registered Nurse",
		SalaryMin:    f64(55000),
		SalaryMax:    f64(65000),
		ContractTime: "full_time",
	}}

	ranked := Jobs(raw, profile, testCity)
	require.Len(t, ranked, 1)

	job := ranked[0]
	assert.Equal(t, 95, job.MatchScore) // 60 title + 30 salary + 5 full-time
	assert.Contains(t, job.MatchReason, "Matches preferred job: nurse")
	assert.Contains(t, job.MatchReason, "salary range overlaps target")
}

func TestJobsScoring(t *testing.T) {
	tests := []struct {
		name       string
		profile    domain.CanonicalProfile
		job        jobsearch.Job
		wantScore  int
		wantReason string
	}{
		{
			name:       "nothing matches",
			profile:    domain.CanonicalProfile{},
			job:        jobsearch.Job{Title: "Forklift Operator"},
			wantScore:  0,
			wantReason: "General nearby job result",
		},
		{
			name:       "title match only",
			profile:    domain.CanonicalProfile{PreferredJobs: []string{"teacher"}},
			job:        jobsearch.Job{Title: "Substitute Teacher"},
			wantScore:  60,
			wantReason: "Matches preferred job: teacher",
		},
		{
			name:       "salary overlap without title match",
			profile:    domain.CanonicalProfile{ExpectedSalary: 50000},
			job:        jobsearch.Job{Title: "Analyst", SalaryMin: f64(45000), SalaryMax: f64(55000)},
			wantScore:  30,
			wantReason: "Salary range overlaps your target",
		},
		{
			name:       "single-sided range counts as full range",
			profile:    domain.CanonicalProfile{ExpectedSalary: 50000},
			job:        jobsearch.Job{Title: "Analyst", SalaryMin: f64(50000)},
			wantScore:  30,
			wantReason: "Salary range overlaps your target",
		},
		{
			name:       "midpoint close to target",
			profile:    domain.CanonicalProfile{ExpectedSalary: 50000},
			job:        jobsearch.Job{Title: "Analyst", SalaryMin: f64(55000), SalaryMax: f64(62000)},
			wantScore:  15,
			wantReason: "Salary range is close to your target",
		},
		{
			name:       "zero expected salary never earns salary points",
			profile:    domain.CanonicalProfile{ExpectedSalary: 0},
			job:        jobsearch.Job{Title: "Analyst", SalaryMin: f64(1), SalaryMax: f64(1000000)},
			wantScore:  0,
			wantReason: "General nearby job result",
		},
		{
			name:       "full time alone",
			profile:    domain.CanonicalProfile{},
			job:        jobsearch.Job{Title: "Cook", ContractTime: "FULL_TIME"},
			wantScore:  5,
			wantReason: "Full-time role",
		},
		{
			name:       "full time does not override salary reason",
			profile:    domain.CanonicalProfile{ExpectedSalary: 50000},
			job:        jobsearch.Job{Title: "Cook", SalaryMin: f64(48000), SalaryMax: f64(52000), ContractTime: "full_time"},
			wantScore:  35,
			wantReason: "Salary range overlaps your target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Jobs([]jobsearch.Job{tt.job}, tt.profile, testCity)
			require.Len(t, ranked, 1)
			assert.Equal(t, tt.wantScore, ranked[0].MatchScore)
			assert.Equal(t, tt.wantReason, ranked[0].MatchReason)
		})
	}
}

func TestJobsDefaults(t *testing.T) {
	ranked := Jobs([]jobsearch.Job{{}}, domain.CanonicalProfile{}, testCity)
	require.Len(t, ranked, 1)

	job := ranked[0]
	assert.Equal(t, "job-0", job.ID)
	assert.Equal(t, "Untitled role", job.Title)
	assert.Equal(t, "Unknown company", job.Company)
	assert.Equal(t, testCity, job.Location)
	assert.Nil(t, job.SalaryMin)
	assert.Nil(t, job.ApplyURL)
	assert.Nil(t, job.DescriptionSnippet)
	assert.Nil(t, job.ContractType)
	assert.Nil(t, job.ContractTime)
}

func TestJobsOrderingAndCap(t *testing.T) {
	profile := domain.CanonicalProfile{PreferredJobs: []string{"nurse"}}

	raw := make([]jobsearch.Job, 0, 15)
	raw = append(raw,
		jobsearch.Job{Title: "Zebra Keeper"},
		jobsearch.Job{Title: "Apple Picker"},
		jobsearch.Job{Title: "Nurse Practitioner"},
	)
	for i := 0; i < 12; i++ {
		raw = append(raw, jobsearch.Job{Title: fmt.Sprintf("Warehouse Worker %02d", i)})
	}

	ranked := Jobs(raw, profile, testCity)
	require.Len(t, ranked, maxResults)
	assert.LessOrEqual(t, len(ranked), len(raw))

	// Highest score first, then ascending title within equal scores.
	assert.Equal(t, "Nurse Practitioner", ranked[0].Title)
	assert.Equal(t, "Apple Picker", ranked[1].Title)
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].MatchScore == ranked[i].MatchScore {
			assert.LessOrEqual(t, ranked[i-1].Title, ranked[i].Title)
		} else {
			assert.Greater(t, ranked[i-1].MatchScore, ranked[i].MatchScore)
		}
	}
}

func TestToSnippet(t *testing.T) {
	assert.Nil(t, toSnippet("", snippetMaxChars))
	assert.Nil(t, toSnippet("   \n\t ", snippetMaxChars))

	short := toSnippet("  A   quiet\n\nrole ", snippetMaxChars)
	require.NotNil(t, short)
	assert.Equal(t, "A quiet role", *short)

	long := toSnippet(strings.Repeat("x", 300), snippetMaxChars)
	require.NotNil(t, long)
	assert.Equal(t, snippetMaxChars+3, len(*long))
	assert.True(t, strings.HasSuffix(*long, "..."))
}
