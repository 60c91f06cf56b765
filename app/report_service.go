package app

import (
	"context"
	"fmt"

	"luxstat/domain/measure"
	"luxstat/internal"
	"luxstat/internal/analysis"
	"luxstat/ports"
)

// ReportService runs one measurement session end to end: collect readings,
// aggregate, combine uncertainties, round for display.
type ReportService struct {
	source ports.MeasurementSource
	sink   ports.ReportSink
	logger *internal.Logger
}

// ReportRequest defines the inputs for a measurement session
type ReportRequest struct {
	InstrumentalUncertainty float64
	IncludeProfile          bool
}

// NewReportService creates a report service
func NewReportService(source ports.MeasurementSource, sink ports.ReportSink, logger *internal.Logger) *ReportService {
	return &ReportService{
		source: source,
		sink:   sink,
		logger: logger,
	}
}

// Run collects readings from the source, pushes the pipeline through the
// sink, and returns the full report.
func (s *ReportService) Run(ctx context.Context, req ReportRequest) (*measure.Report, error) {
	count, err := s.source.Count()
	if err != nil {
		return nil, fmt.Errorf("reading measurement count: %w", err)
	}

	values := make([]float64, 0, count)
	for i := 1; i <= count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := s.source.Measurement(i)
		if err != nil {
			return nil, fmt.Errorf("reading measurement %d: %w", i, err)
		}
		values = append(values, v)
	}

	ms, err := measure.NewMeasurementSet(values)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("collected %d measurements", ms.Len())

	stats, err := analysis.ComputeStatistics(ms)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("mean=%.6f stddev=%.6f stderr=%.6f",
		stats.Mean, stats.SampleStdDev, stats.StandardError)

	combined, err := analysis.Combine(stats, req.InstrumentalUncertainty)
	if err != nil {
		return nil, err
	}

	report := &measure.Report{
		Measurements: ms,
		Stats:        stats,
		Instrumental: req.InstrumentalUncertainty,
		Combined:     combined,
		Reported:     analysis.RoundSignificant(combined.CentralValue, combined.TotalUncertainty),
	}

	s.sink.Diagnostics(stats, req.InstrumentalUncertainty, combined.TotalUncertainty)

	if req.IncludeProfile {
		profile, err := analysis.ProfileMeasurements(ms)
		if err != nil {
			return nil, fmt.Errorf("profiling measurements: %w", err)
		}
		report.Profile = &profile
		s.sink.Profile(profile)
	}

	s.sink.Result(report.Reported)
	return report, nil
}
