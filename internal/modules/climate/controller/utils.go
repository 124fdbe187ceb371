package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"climate-server/internal/modules/climate/repository"
	"climate-server/internal/modules/climate/views"
)

const apiPrefix = "/api/v1.0"

var indexRoutes = []views.Route{
	{Path: apiPrefix + "/precipitation", Href: apiPrefix + "/precipitation", Description: "precipitation readings by date"},
	{Path: apiPrefix + "/stations", Href: apiPrefix + "/stations", Description: "stations with measurements"},
	{Path: apiPrefix + "/tobs", Href: apiPrefix + "/tobs", Description: "temperature observations for the last year of data"},
	{Path: apiPrefix + "/<start>", Href: apiPrefix + "/2017-01-01", Description: "daily min/avg/max temperature from start (YYYY-MM-DD)"},
	{Path: apiPrefix + "/<start>/<end>", Href: apiPrefix + "/2017-01-01/2017-01-07", Description: "daily min/avg/max temperature between start and end, inclusive"},
}

// parseDateParam reads a YYYY-MM-DD path value. Malformed dates are rejected
// instead of being compared as strings against the dataset.
func parseDateParam(r *http.Request, name string) (string, error) {
	s := r.PathValue(name)
	if s == "" {
		return "", fmt.Errorf("missing '%s' date", name)
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", fmt.Errorf("invalid '%s' date %q (expected YYYY-MM-DD)", name, s)
	}
	return s, nil
}

// statusFor maps service errors onto HTTP statuses and client-facing messages.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrEmptyDataset):
		return http.StatusNotFound, "dataset has no measurements"
	case errors.Is(err, repository.ErrDataSource):
		return http.StatusInternalServerError, "data source unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
