package service

import (
	"context"

	"climate-server/internal/modules/climate/repository"
	"climate-server/internal/modules/climate/types"
)

// RecentWindowDays is the length of the trailing temperature window, counted
// back from the latest date in the dataset.
const RecentWindowDays = 365

// Service reshapes repository rows into the API's response structures.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	repository repository.ClimateRepository
}

func NewService(repository repository.ClimateRepository) *Service {
	return &Service{repository: repository}
}

func (s *Service) ListPrecipitation(ctx context.Context) (types.ValuesByDate, error) {
	rows, err := s.repository.GetPrecipitation(ctx)
	if err != nil {
		return nil, err
	}
	return groupByDate(rows), nil
}

func (s *Service) ListStations(ctx context.Context) (types.StationList, error) {
	ids, err := s.repository.GetStationIDs(ctx)
	if err != nil {
		return types.StationList{}, err
	}
	if ids == nil {
		ids = []string{}
	}
	return types.StationList{Station: ids}, nil
}

func (s *Service) ListRecentTemperatureObservations(ctx context.Context) (types.ValuesByDate, error) {
	rows, err := s.repository.GetRecentTemperatures(ctx, RecentWindowDays)
	if err != nil {
		return nil, err
	}
	return groupByDate(rows), nil
}

func (s *Service) SummarizeFrom(ctx context.Context, start string) (types.SummaryByDate, error) {
	rows, err := s.repository.GetTemperatureSummaries(ctx, start, "")
	if err != nil {
		return nil, err
	}
	return summaryByDate(rows), nil
}

// SummarizeBetween covers start <= date <= end. An end before start matches
// nothing and yields an empty mapping.
func (s *Service) SummarizeBetween(ctx context.Context, start, end string) (types.SummaryByDate, error) {
	if end < start {
		return types.SummaryByDate{}, nil
	}
	rows, err := s.repository.GetTemperatureSummaries(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return summaryByDate(rows), nil
}

// groupByDate folds rows into date -> readings, skipping NULL values.
// Readings keep the order they were read in.
func groupByDate(rows []types.DatedValue) types.ValuesByDate {
	out := types.ValuesByDate{}
	for _, r := range rows {
		if r.Value == nil {
			continue
		}
		out[r.Date] = append(out[r.Date], *r.Value)
	}
	return out
}

func summaryByDate(rows []types.DailySummary) types.SummaryByDate {
	out := make(types.SummaryByDate, len(rows))
	for _, r := range rows {
		out[r.Date] = r.TemperatureSummary
	}
	return out
}
