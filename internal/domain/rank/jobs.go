// Package rank scores and orders raw upstream listings against a
// canonical profile. Scoring is total: malformed listings never error,
// they just score low.
package rank

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/honeycarbs/urban-match/internal/domain"
	"github.com/honeycarbs/urban-match/pkg/jobsearch"
)

// maxResults caps every ranked section.
const maxResults = 12

// snippetMaxChars caps the description snippet.
const snippetMaxChars = 220

const defaultJobReason = "General nearby job result"

var whitespaceRe = regexp.MustCompile(`\s+`)

// Jobs scores raw job listings against the profile and returns the top
// results, highest score first, ties broken by title.
func Jobs(raw []jobsearch.Job, p domain.CanonicalProfile, defaultCity string) []domain.RankedJob {
	preferredTerms := make([]string, 0, len(p.PreferredJobs))
	for _, term := range p.PreferredJobs {
		if t := strings.ToLower(strings.TrimSpace(term)); t != "" {
			preferredTerms = append(preferredTerms, t)
		}
	}

	targetSalary := 0.0
	if p.ExpectedSalary > 0 {
		targetSalary = p.ExpectedSalary
	}

	ranked := make([]domain.RankedJob, 0, len(raw))
	for idx, job := range raw {
		ranked = append(ranked, scoreJob(job, idx, preferredTerms, targetSalary, defaultCity))
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}
		return ranked[i].Title < ranked[j].Title
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	return ranked
}

func scoreJob(job jobsearch.Job, idx int, preferredTerms []string, targetSalary float64, defaultCity string) domain.RankedJob {
	title := job.Title
	if title == "" {
		title = "Untitled role"
	}
	titleLower := strings.ToLower(title)

	company := job.Company
	if company == "" {
		company = "Unknown company"
	}
	location := job.Location
	if location == "" {
		location = defaultCity
	}

	score := 0
	reason := defaultJobReason

	matchedTerm := ""
	for _, term := range preferredTerms {
		if strings.Contains(titleLower, term) {
			matchedTerm = term
			break
		}
	}
	if matchedTerm != "" {
		score += 60
		reason = fmt.Sprintf("Matches preferred job: %s", matchedTerm)
	}

	if targetSalary > 0 && (job.SalaryMin != nil || job.SalaryMax != nil) {
		// A single-sided range mirrors the present bound. Deliberately
		// lenient: one figure can count as a full range match.
		low := coalesce(job.SalaryMin, job.SalaryMax)
		high := coalesce(job.SalaryMax, job.SalaryMin)

		switch {
		case targetSalary >= low && targetSalary <= high:
			score += 30
			if matchedTerm != "" {
				reason += "; salary range overlaps target"
			} else {
				reason = "Salary range overlaps your target"
			}
		case abs((low+high)/2-targetSalary) <= targetSalary*0.2:
			score += 15
			if matchedTerm == "" {
				reason = "Salary range is close to your target"
			}
		}
	}

	if strings.Contains(strings.ToLower(job.ContractTime), "full") {
		score += 5
		if matchedTerm == "" && !strings.Contains(reason, "Salary") {
			reason = "Full-time role"
		}
	}

	id := job.ID
	if id == "" {
		id = fmt.Sprintf("job-%d", idx)
	}

	return domain.RankedJob{
		ID:                 id,
		Title:              title,
		Company:            company,
		Location:           location,
		SalaryMin:          job.SalaryMin,
		SalaryMax:          job.SalaryMax,
		ApplyURL:           optional(job.RedirectURL),
		DescriptionSnippet: toSnippet(job.Description, snippetMaxChars),
		ContractType:       optional(job.ContractType),
		ContractTime:       optional(job.ContractTime),
		MatchScore:         score,
		MatchReason:        reason,
	}
}

// toSnippet collapses whitespace, trims, and caps the text at max runes
// with a trailing ellipsis marker. Empty text yields nil.
func toSnippet(text string, max int) *string {
	clean := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	if clean == "" {
		return nil
	}

	if runes := []rune(clean); len(runes) > max {
		clean = string(runes[:max]) + "..."
	}
	return &clean
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func coalesce(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
