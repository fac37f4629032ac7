// Package recommend orchestrates the recommendation request: profile
// normalization, the three-way upstream fan-out, ranking, and final
// response assembly.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/honeycarbs/urban-match/internal/domain"
	"github.com/honeycarbs/urban-match/internal/domain/overview"
	"github.com/honeycarbs/urban-match/internal/domain/profile"
	"github.com/honeycarbs/urban-match/internal/domain/rank"
	"github.com/honeycarbs/urban-match/pkg/gems"
	"github.com/honeycarbs/urban-match/pkg/housing"
	"github.com/honeycarbs/urban-match/pkg/jobsearch"
	"github.com/honeycarbs/urban-match/pkg/logging"
)

// GemsClient is the hidden-gems upstream.
type GemsClient interface {
	Recommend(ctx context.Context, location string, preferences []string) (*gems.Response, error)
}

// JobsClient is the jobs search upstream.
type JobsClient interface {
	Search(ctx context.Context, role string) ([]jobsearch.Job, error)
}

// HousingClient is the housing search upstream.
type HousingClient interface {
	SearchByCity(ctx context.Context, city string) ([]housing.Property, error)
}

// OverviewComposer builds the life overview from ranked results.
type OverviewComposer interface {
	Compose(ctx context.Context, in overview.Input) domain.LifeOverview
}

// Settings are the request-independent knobs of the orchestrator.
type Settings struct {
	City           string // metro label and hidden-gems location
	HousingCity    string // housing search query
	DefaultJobRole string // role when the profile names none
}

// UpstreamError is a fatal hidden-gems failure carrying the status the
// HTTP layer should pass through.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Service runs the aggregation. Stateless across requests.
type Service struct {
	gems     GemsClient
	jobs     JobsClient
	housing  HousingClient
	composer OverviewComposer
	settings Settings
	logger   *logging.Logger
	clock    func() time.Time
}

// NewService builds a Service with direct dependencies.
func NewService(
	gemsClient GemsClient,
	jobsClient JobsClient,
	housingClient HousingClient,
	composer OverviewComposer,
	settings Settings,
	logger *logging.Logger,
) (*Service, error) {
	if gemsClient == nil {
		return nil, fmt.Errorf("recommend.Service: gems client is required")
	}
	if jobsClient == nil {
		return nil, fmt.Errorf("recommend.Service: jobs client is required")
	}
	if housingClient == nil {
		return nil, fmt.Errorf("recommend.Service: housing client is required")
	}
	if composer == nil {
		return nil, fmt.Errorf("recommend.Service: composer is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if settings.City == "" {
		settings.City = "St Louis, MO"
	}
	if settings.HousingCity == "" {
		settings.HousingCity = "St Louis"
	}
	if settings.DefaultJobRole == "" {
		settings.DefaultJobRole = "Software Engineer"
	}

	return &Service{
		gems:     gemsClient,
		jobs:     jobsClient,
		housing:  housingClient,
		composer: composer,
		settings: settings,
		logger:   logger,
		clock:    time.Now,
	}, nil
}

// WithClock swaps the timestamp source. Intended for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// Recommend runs the whole pipeline for one raw profile.
//
// The three upstream calls run concurrently and all settle before any
// policy is applied: a hidden-gems failure is fatal (returned as
// *UpstreamError), a jobs or housing failure degrades that section to an
// empty list.
func (s *Service) Recommend(ctx context.Context, raw domain.RawProfile) (*domain.Recommendation, error) {
	prof := profile.Normalize(raw)
	prefs := profile.DerivePreferences(prof.Interests)

	prefStrings := make([]string, len(prefs))
	for i, p := range prefs {
		prefStrings[i] = string(p)
	}

	role := s.settings.DefaultJobRole
	for _, j := range prof.PreferredJobs {
		if strings.TrimSpace(j) != "" {
			role = j
			break
		}
	}

	var (
		gemsResp   *gems.Response
		gemsErr    error
		rawJobs    []jobsearch.Job
		jobsErr    error
		rawHomes   []housing.Property
		housingErr error
	)

	// errgroup as a settle barrier only: each slot records its own error
	// and returns nil so no branch cancels another.
	var g errgroup.Group
	g.Go(func() error {
		gemsResp, gemsErr = s.gems.Recommend(ctx, s.settings.City, prefStrings)
		return nil
	})
	g.Go(func() error {
		rawJobs, jobsErr = s.jobs.Search(ctx, role)
		return nil
	})
	g.Go(func() error {
		rawHomes, housingErr = s.housing.SearchByCity(ctx, s.settings.HousingCity)
		return nil
	})
	_ = g.Wait()

	if gemsErr != nil {
		var statusErr *gems.StatusError
		if errors.As(gemsErr, &statusErr) {
			s.logger.Error("hidden gems upstream returned an error status",
				"status", statusErr.StatusCode, "err", statusErr)
			return nil, &UpstreamError{Status: statusErr.StatusCode, Message: statusErr.Error()}
		}
		s.logger.Error("hidden gems upstream unreachable", "err", gemsErr)
		return nil, &UpstreamError{Status: http.StatusBadGateway, Message: "Hidden gems backend request failed"}
	}

	rankedJobs := []domain.RankedJob{}
	if jobsErr != nil {
		s.logger.Warn("jobs section degraded to empty", "err", jobsErr)
	} else {
		rankedJobs = rank.Jobs(rawJobs, prof, s.settings.City)
	}

	rankedHousing := []domain.RankedHousing{}
	if housingErr != nil {
		s.logger.Warn("housing section degraded to empty", "err", housingErr)
	} else {
		rankedHousing = rank.Housing(rawHomes, prof)
	}

	lifeOverview := s.composer.Compose(ctx, overview.Input{
		Profile: prof,
		Gems:    gemsResp,
		Jobs:    rankedJobs,
		Housing: rankedHousing,
	})

	return &domain.Recommendation{
		Profile:      prof,
		HiddenGems:   gemsResp,
		Jobs:         rankedJobs,
		Housing:      rankedHousing,
		LifeOverview: lifeOverview,
		Meta: domain.Meta{
			City:               s.settings.City,
			GeneratedAt:        s.clock().UTC().Format(time.RFC3339),
			DerivedPreferences: prefs,
			Services: domain.ServiceStatuses{
				HiddenGems: domain.ServiceOK,
				Jobs:       sectionStatus(len(rankedJobs)),
				Housing:    sectionStatus(len(rankedHousing)),
			},
		},
	}, nil
}

func sectionStatus(n int) domain.ServiceStatus {
	if n > 0 {
		return domain.ServiceOK
	}
	return domain.ServiceEmpty
}
