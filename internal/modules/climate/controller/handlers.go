package controller

import (
	"bytes"
	"log/slog"
	"net/http"

	"climate-server/internal/modules/climate/views"
	"climate-server/internal/utils"
)

func (c *climateControllerImpl) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := views.RenderIndex(&buf, &views.IndexData{Title: "Climate API", Routes: indexRoutes}); err != nil {
		slog.Error("index template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("index: write response failed", "error", err)
	}
}

func (c *climateControllerImpl) handlePrecipitation(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.ListPrecipitation(r.Context())
	if err != nil {
		c.writeServiceError(w, "precipitation", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *climateControllerImpl) handleStations(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.ListStations(r.Context())
	if err != nil {
		c.writeServiceError(w, "stations", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *climateControllerImpl) handleTobs(w http.ResponseWriter, r *http.Request) {
	out, err := c.service.ListRecentTemperatureObservations(r.Context())
	if err != nil {
		c.writeServiceError(w, "tobs", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *climateControllerImpl) handleSummaryFrom(w http.ResponseWriter, r *http.Request) {
	start, err := parseDateParam(r, "start")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := c.service.SummarizeFrom(r.Context(), start)
	if err != nil {
		c.writeServiceError(w, "summary from", err, "start", start)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *climateControllerImpl) handleSummaryBetween(w http.ResponseWriter, r *http.Request) {
	start, err := parseDateParam(r, "start")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDateParam(r, "end")
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	out, err := c.service.SummarizeBetween(r.Context(), start, end)
	if err != nil {
		c.writeServiceError(w, "summary between", err, "start", start, "end", end)
		return
	}
	utils.WriteJSON(w, http.StatusOK, out)
}

func (c *climateControllerImpl) writeServiceError(w http.ResponseWriter, op string, err error, attrs ...any) {
	status, msg := statusFor(err)
	args := append([]any{"op", op, "status", status, "error", err}, attrs...)
	if status >= http.StatusInternalServerError {
		slog.Error("climate query failed", args...)
	} else {
		slog.Warn("climate query rejected", args...)
	}
	utils.WriteError(w, status, msg)
}
