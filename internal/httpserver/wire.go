//go:build wireinject
// +build wireinject

package httpserver

import (
	"github.com/google/wire"

	"github.com/honeycarbs/urban-match/internal/config"
	"github.com/honeycarbs/urban-match/internal/domain/overview"
	"github.com/honeycarbs/urban-match/internal/domain/recommend"
	"github.com/honeycarbs/urban-match/pkg/gems"
	"github.com/honeycarbs/urban-match/pkg/geocode"
	"github.com/honeycarbs/urban-match/pkg/housing"
	"github.com/honeycarbs/urban-match/pkg/jobsearch"
	"github.com/honeycarbs/urban-match/pkg/logging"
)

// InitializeServer wires the upstream clients, the orchestrator, and the
// HTTP layer into a runnable server.
func InitializeServer(cfg config.Config, log *logging.Logger) (*Server, error) {
	wire.Build(
		// Outbound HTTP
		provideHTTPClient,

		// Upstream clients
		provideGemsConfig,
		gems.NewClient,
		wire.Bind(new(recommend.GemsClient), new(*gems.Client)),
		provideJobsConfig,
		jobsearch.NewClient,
		wire.Bind(new(recommend.JobsClient), new(*jobsearch.Client)),
		provideHousingConfig,
		housing.NewClient,
		wire.Bind(new(recommend.HousingClient), new(*housing.Client)),
		provideGeocodeConfig,
		geocode.NewClient,
		wire.Bind(new(overview.Geocoder), new(*geocode.Client)),

		// Domain services
		overview.NewComposer,
		wire.Bind(new(recommend.OverviewComposer), new(*overview.Composer)),
		provideSettings,
		recommend.NewService,
		wire.Bind(new(Recommender), new(*recommend.Service)),

		// HTTP layer
		NewHandler,
		NewServer,
	)

	return &Server{}, nil
}
