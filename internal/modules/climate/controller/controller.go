package controller

import (
	"context"
	"net/http"

	"climate-server/internal/modules/climate/types"
)

// ClimateService is the query surface the handlers depend on.
type ClimateService interface {
	ListPrecipitation(ctx context.Context) (types.ValuesByDate, error)
	ListStations(ctx context.Context) (types.StationList, error)
	ListRecentTemperatureObservations(ctx context.Context) (types.ValuesByDate, error)
	SummarizeFrom(ctx context.Context, start string) (types.SummaryByDate, error)
	SummarizeBetween(ctx context.Context, start, end string) (types.SummaryByDate, error)
}

type ClimateController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type climateControllerImpl struct {
	service ClimateService
}

func NewClimateController(service ClimateService) ClimateController {
	return &climateControllerImpl{service: service}
}

func (c *climateControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", c.handleIndex)
	mux.HandleFunc("GET "+apiPrefix+"/precipitation", c.handlePrecipitation)
	mux.HandleFunc("GET "+apiPrefix+"/stations", c.handleStations)
	mux.HandleFunc("GET "+apiPrefix+"/tobs", c.handleTobs)
	mux.HandleFunc("GET "+apiPrefix+"/{start}", c.handleSummaryFrom)
	mux.HandleFunc("GET "+apiPrefix+"/{start}/{end}", c.handleSummaryBetween)
}
