package cmd

import (
	"log/slog"
	"net/http"

	httpin "shiprates/internal/adapters/in/http"
	"shiprates/internal/adapters/out/easyship"
	"shiprates/internal/adapters/out/mockrates"
	"shiprates/internal/adapters/out/postgres"
	"shiprates/internal/adapters/out/resilience"
	"shiprates/internal/adapters/out/sendparcel"
	"shiprates/internal/core/application/rating"
	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
	"shiprates/internal/jobs"
	"shiprates/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	logger     *slog.Logger
	httpClient *http.Client
	synth      services.MockRateSynthesizer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.New(),
		logger:     logger,
		httpClient: &http.Client{Timeout: config.ProviderTimeout},
		synth:      services.NewMockRateSynthesizer(nil),
	}
}

// CreateRateProviders returns the provider chain in priority order:
// Easyship, SendParcel when enabled and configured, then the mock provider.
func (c *CompositionRoot) CreateRateProviders() []ports.RateProvider {
	breaker := resilience.DefaultBreakerConfig()

	providers := []ports.RateProvider{
		resilience.NewBreakerProvider(
			easyship.NewProvider(c.config.EasyshipURL, c.config.EasyshipAPIKey, c.httpClient, c.logger),
			breaker, c.logger),
	}

	secondary := sendparcel.NewProvider(c.config.SendParcelURL, c.config.SendParcelAPIKey, c.httpClient, c.logger)
	switch {
	case c.config.SecondaryInChain && secondary.Enabled():
		providers = append(providers, resilience.NewBreakerProvider(secondary, breaker, c.logger))
	case c.config.SecondaryInChain:
		c.logger.Warn("Secondary provider requested but SENDPARCEL_API_KEY is empty, skipping")
	}

	return append(providers, mockrates.NewProvider(c.synth))
}

func (c *CompositionRoot) CreateQuoteAggregator() (*rating.QuoteAggregator, error) {
	return rating.NewQuoteAggregator(c.CreateRateProviders(), c.config.ProviderTimeout, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetRatesQueryHandler() (queries.GetRatesQueryHandler, error) {
	aggregator, err := c.CreateQuoteAggregator()
	if err != nil {
		return queries.GetRatesQueryHandler{}, err
	}

	uow := c.uowFactory.Create()
	readers := queries.SettingsReaders{
		Filters:    uow.FilterSettingsRepository(),
		Prices:     uow.PriceAdjustmentRepository(),
		RouteRules: uow.RouteRuleRepository(),
	}
	return queries.NewGetRatesQueryHandler(aggregator, readers, c.synth, c.logger), nil
}

func (c *CompositionRoot) CreateGetFilterSettingsQueryHandler() queries.GetFilterSettingsQueryHandler {
	return queries.NewGetFilterSettingsQueryHandler(c.uowFactory.Create().FilterSettingsRepository())
}

func (c *CompositionRoot) CreateGetPriceAdjustmentQueryHandler() queries.GetPriceAdjustmentQueryHandler {
	return queries.NewGetPriceAdjustmentQueryHandler(c.uowFactory.Create().PriceAdjustmentRepository())
}

func (c *CompositionRoot) CreateGetRouteRulesQueryHandler() queries.GetRouteRulesQueryHandler {
	return queries.NewGetRouteRulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateUpdateFilterSettingsCommandHandler() commands.UpdateFilterSettingsCommandHandler {
	return commands.NewUpdateFilterSettingsCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePriceAdjustmentCommandHandler() commands.UpdatePriceAdjustmentCommandHandler {
	return commands.NewUpdatePriceAdjustmentCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateAddRouteRuleCommandHandler() commands.AddRouteRuleCommandHandler {
	return commands.NewAddRouteRuleCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRouteRuleCommandHandler() commands.DeleteRouteRuleCommandHandler {
	return commands.NewDeleteRouteRuleCommandHandler(c.settingsUoWFactory())
}

// CreateWebServer wires every use case into the echo router.
func (c *CompositionRoot) CreateWebServer(getRates queries.GetRatesQueryHandler) (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		GetRates:              getRates,
		GetFilterSettings:     c.CreateGetFilterSettingsQueryHandler(),
		GetPriceAdjustment:    c.CreateGetPriceAdjustmentQueryHandler(),
		GetRouteRules:         c.CreateGetRouteRulesQueryHandler(),
		UpdateFilterSettings:  c.CreateUpdateFilterSettingsCommandHandler(),
		UpdatePriceAdjustment: c.CreateUpdatePriceAdjustmentCommandHandler(),
		AddRouteRule:          c.CreateAddRouteRuleCommandHandler(),
		DeleteRouteRule:       c.CreateDeleteRouteRuleCommandHandler(),
	}, c.logger)

	return httpin.NewRouter(server, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager(getRates queries.GetRatesQueryHandler) *jobs.JobManager {
	return jobs.NewJobManager(getRates, c.config.RateProbeSchedule, c.logger)
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
