package http

import (
	"context"
	"log/slog"
	"net/http"

	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// QueryHandler is satisfied by every handler in the queries package.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// CommandHandler is satisfied by every handler in the commands package.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handlers groups the use cases behind the HTTP API.
type Handlers struct {
	GetRates           QueryHandler[queries.GetRatesQuery, queries.GetRatesQueryResponse]
	GetFilterSettings  QueryHandler[queries.GetFilterSettingsQuery, queries.GetFilterSettingsQueryResponse]
	GetPriceAdjustment QueryHandler[queries.GetPriceAdjustmentQuery, queries.GetPriceAdjustmentQueryResponse]
	GetRouteRules      QueryHandler[queries.GetRouteRulesQuery, []queries.GetRouteRulesQueryResponse]

	UpdateFilterSettings  CommandHandler[commands.UpdateFilterSettingsCommand]
	UpdatePriceAdjustment CommandHandler[commands.UpdatePriceAdjustmentCommand]
	AddRouteRule          CommandHandler[commands.AddRouteRuleCommand]
	DeleteRouteRule       CommandHandler[commands.DeleteRouteRuleCommand]
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates the HTTP server adapter.
func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http_server")}
}

// GetRates handles POST /api/v1/rates.
func (s *Server) GetRates(ctx echo.Context) error {
	var body servers.RateRequest
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	req, err := toShipmentRequest(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetRatesQuery(req)
	if err != nil {
		return s.fail(ctx, err)
	}

	res, err := s.h.GetRates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.RatesResponse{
		Quotes: toQuotes(res.Quotes),
		Source: servers.RatesResponseSource(res.Source.String()),
	})
}

// GetCourierFilters handles GET /api/v1/admin/courier-filters.
func (s *Server) GetCourierFilters(ctx echo.Context) error {
	res, err := s.h.GetFilterSettings.Handle(ctx.Request().Context(), queries.NewGetFilterSettingsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.CourierFilters{
		PositiveKeywords: nonNil(res.PositiveKeywords),
		NegativeKeywords: nonNil(res.NegativeKeywords),
	})
}

// UpdateCourierFilters handles PUT /api/v1/admin/courier-filters.
func (s *Server) UpdateCourierFilters(ctx echo.Context) error {
	var body servers.CourierFiltersUpdate
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	positive, err := keywords("positiveKeywords", body.PositiveKeywords)
	if err != nil {
		return s.fail(ctx, err)
	}
	negative, err := keywords("negativeKeywords", body.NegativeKeywords)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd := commands.NewUpdateFilterSettingsCommand(positive, negative)
	if err = s.h.UpdateFilterSettings.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	stored := cmd.Settings()
	return ctx.JSON(http.StatusOK, servers.CourierFilters{
		PositiveKeywords: stored.PositiveKeywords(),
		NegativeKeywords: stored.NegativeKeywords(),
	})
}

// GetPriceAdjustment handles GET /api/v1/admin/price-adjustment.
func (s *Server) GetPriceAdjustment(ctx echo.Context) error {
	res, err := s.h.GetPriceAdjustment.Handle(ctx.Request().Context(), queries.NewGetPriceAdjustmentQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, priceAdjustmentBody(res.Percentage, res.Threshold, res.MinimumPrice))
}

// UpdatePriceAdjustment handles PUT /api/v1/admin/price-adjustment.
func (s *Server) UpdatePriceAdjustment(ctx echo.Context) error {
	var body servers.PriceAdjustment
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdatePriceAdjustmentCommand(body.Percentage, deref(body.Threshold), deref(body.MinimumPrice))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.UpdatePriceAdjustment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	a := cmd.Adjustment()
	return ctx.JSON(http.StatusOK, priceAdjustmentBody(a.Percentage(), a.Threshold(), a.MinimumPrice()))
}

// ListRouteRules handles GET /api/v1/admin/route-rules.
func (s *Server) ListRouteRules(ctx echo.Context) error {
	rules, err := s.h.GetRouteRules.Handle(ctx.Request().Context(), queries.NewGetRouteRulesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.RouteRule, len(rules))
	for i, r := range rules {
		response[i] = servers.RouteRule{
			Id:                 r.ID.Bytes(),
			DestinationCountry: r.DestinationCountry,
			CarrierKeywords:    nonNil(r.CarrierKeywords),
			ServiceKeywords:    nonNil(r.ServiceKeywords),
			Position:           r.Position,
			IsDefault:          r.IsDefault,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRouteRule handles POST /api/v1/admin/route-rules.
func (s *Server) CreateRouteRule(ctx echo.Context) error {
	var body servers.NewRouteRule
	if err := ctx.Bind(&body); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&body); err != nil {
		return s.fail(ctx, err)
	}

	var services []string
	if body.ServiceKeywords != nil {
		services = *body.ServiceKeywords
	}

	cmd, err := commands.NewAddRouteRuleCommand(body.DestinationCountry, body.CarrierKeywords, services, deref(body.Position))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.AddRouteRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	rule := cmd.Rule()
	return ctx.JSON(http.StatusCreated, servers.RouteRule{
		Id:                 rule.ID().Bytes(),
		DestinationCountry: rule.DestinationCountry(),
		CarrierKeywords:    rule.CarrierKeywords(),
		ServiceKeywords:    nonNil(rule.ServiceKeywords()),
		Position:           rule.Position(),
	})
}

// DeleteRouteRule handles DELETE /api/v1/admin/route-rules/{ruleId}.
func (s *Server) DeleteRouteRule(ctx echo.Context, ruleID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(ruleID[:])
	if err != nil {
		return s.badRequest(ctx, "Invalid rule id")
	}

	cmd, err := commands.NewDeleteRouteRuleCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.DeleteRouteRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
