package ingest

import (
	"context"
	"fmt"
	"strconv"

	"bassMate/domain"
	"bassMate/pkg/logger"
	"bassMate/pkg/metrics"
)

// ---- Repository / client interfaces ----

type CatchRepository interface {
	FindAll(ctx context.Context) ([]domain.FishingCatch, error)
}

type TrainingDataRepository interface {
	FindBySourceURL(ctx context.Context, sourceURL string) (*domain.TrainingRecord, error)
	Create(ctx context.Context, record *domain.TrainingRecord) error
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
}

// ResolvedPlace is a geocoded spot: formatted address plus coordinates.
type ResolvedPlace struct {
	Address   string
	Latitude  float64
	Longitude float64
}

// GeoResolver resolves free-text place names to coordinates. A nil place
// with nil error means the service answered but found nothing.
type GeoResolver interface {
	Resolve(ctx context.Context, query string) (*ResolvedPlace, error)
}

// BackfilledWeather is one day of historical weather for a point.
type BackfilledWeather struct {
	Temperature float64
	Wind        float64
	Condition   string
}

// WeatherBackfiller fetches historical daily weather. A nil result with nil
// error means the archive has no data for that day.
type WeatherBackfiller interface {
	Fetch(ctx context.Context, lat, lon float64, date string) (*BackfilledWeather, error)
}

// ---- Merge ----

type MergeAction int

const (
	MergeSkipped MergeAction = iota
	MergeInserted
	MergeUpdated
)

func (a MergeAction) String() string {
	switch a {
	case MergeInserted:
		return "inserted"
	case MergeUpdated:
		return "updated"
	default:
		return "skipped"
	}
}

// ---- Usecase / Service ----

type Service struct {
	catchRepo    CatchRepository
	trainingRepo TrainingDataRepository
	geo          GeoResolver
	weather      WeatherBackfiller
	reportPath   string
}

func NewService(
	catchRepo CatchRepository,
	trainingRepo TrainingDataRepository,
	geo GeoResolver,
	weather WeatherBackfiller,
	reportPath string,
) *Service {
	return &Service{
		catchRepo:    catchRepo,
		trainingRepo: trainingRepo,
		geo:          geo,
		weather:      weather,
		reportPath:   reportPath,
	}
}

// PassSummary counts what happened during one full ingestion pass.
type PassSummary struct {
	Processed        int
	Inserted         int
	Updated          int
	Skipped          int
	GeocodeFailures  int
	BackfillFailures int
	Errors           int
}

// Merge deduplicates one candidate against the canonical dataset by its
// source URL. An existing record only ever gains values for fields that are
// still null; present values are never overwritten or downgraded. A new
// record must carry coordinates, an address and the full weather trio.
func (s *Service) Merge(ctx context.Context, candidate *domain.TrainingRecord) (MergeAction, []string, error) {
	if err := ctx.Err(); err != nil {
		return MergeSkipped, nil, fmt.Errorf("context error: %w", err)
	}
	if candidate.SourceURL == "" {
		return MergeSkipped, nil, fmt.Errorf("candidate has no source url")
	}

	existing, err := s.trainingRepo.FindBySourceURL(ctx, candidate.SourceURL)
	if err != nil {
		return MergeSkipped, nil, fmt.Errorf("lookup by source url: %w", err)
	}

	if existing != nil {
		fields := map[string]interface{}{}

		if existing.Weather == nil && candidate.Weather != nil {
			fields["weather"] = *candidate.Weather
		}
		if existing.Temperature == nil && candidate.Temperature != nil {
			fields["temperature"] = *candidate.Temperature
		}
		if existing.Wind == nil && candidate.Wind != nil {
			fields["wind"] = *candidate.Wind
		}
		if existing.TimePeriod == nil && candidate.TimePeriod != nil {
			fields["time_period"] = *candidate.TimePeriod
		}

		if len(fields) == 0 {
			return MergeSkipped, nil, nil
		}

		if err := s.trainingRepo.UpdateFields(ctx, existing.ID, fields); err != nil {
			return MergeSkipped, nil, fmt.Errorf("fill fields: %w", err)
		}

		staged := make([]string, 0, len(fields))
		for name := range fields {
			staged = append(staged, name)
		}
		return MergeUpdated, staged, nil
	}

	if !candidate.Usable() {
		return MergeSkipped, nil, fmt.Errorf("candidate %q has no resolved coordinates", candidate.SpotName)
	}

	if err := s.trainingRepo.Create(ctx, candidate); err != nil {
		return MergeSkipped, nil, fmt.Errorf("insert training record: %w", err)
	}

	return MergeInserted, nil, nil
}

// RunPass processes every raw catch once, strictly sequentially: geocode,
// normalize the time period, backfill missing weather, then merge into the
// training dataset. Per-record failures are isolated and never abort the
// pass. Records that fail weather backfill end up in the failure report for
// manual follow-up instead of being silently lost.
func (s *Service) RunPass(ctx context.Context) (PassSummary, error) {
	var summary PassSummary

	catches, err := s.catchRepo.FindAll(ctx)
	if err != nil {
		return summary, fmt.Errorf("load raw catches: %w", err)
	}

	var failures []FailureRow

	for _, raw := range catches {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("context error: %w", err)
		}

		summary.Processed++

		if raw.SpotName == "" || raw.PostedAt == nil {
			summary.Skipped++
			continue
		}

		place, err := s.geo.Resolve(ctx, raw.SpotName)
		if err != nil || place == nil {
			if err != nil {
				logger.Warn("geocode failed", "spot_name", raw.SpotName, "error", err)
			}
			summary.GeocodeFailures++
			metrics.IngestRecords.WithLabelValues("geocode_failed").Inc()
			continue
		}

		candidate := domain.TrainingRecord{
			SpotName:    raw.SpotName,
			Address:     &place.Address,
			Latitude:    &place.Latitude,
			Longitude:   &place.Longitude,
			Weather:     raw.Weather,
			TimePeriod:  NormalizeTimePeriod(deref(raw.TimePeriod)),
			BaitType:    raw.BaitType,
			Temperature: raw.Temperature,
			Wind:        raw.Wind,
			Result:      raw.Result,
			SourceURL:   raw.SourceURL,
			PostedAt:    raw.PostedAt,
		}

		if candidate.Weather == nil || candidate.Temperature == nil || candidate.Wind == nil {
			date := raw.PostedAt.Format("2006-01-02")

			backfill, err := s.weather.Fetch(ctx, place.Latitude, place.Longitude, date)
			if err != nil || backfill == nil {
				if err != nil {
					logger.Warn("weather backfill failed", "spot_name", raw.SpotName, "date", date, "error", err)
				}
				failures = append(failures, FailureRow{
					SpotName:  raw.SpotName,
					Latitude:  place.Latitude,
					Longitude: place.Longitude,
					Date:      date,
					SourceURL: raw.SourceURL,
				})
				summary.BackfillFailures++
				metrics.IngestRecords.WithLabelValues("backfill_failed").Inc()
				continue
			}

			if candidate.Weather == nil {
				candidate.Weather = &backfill.Condition
			}
			if candidate.Temperature == nil {
				temp := strconv.FormatFloat(backfill.Temperature, 'f', -1, 64)
				candidate.Temperature = &temp
			}
			if candidate.Wind == nil {
				wind := strconv.FormatFloat(backfill.Wind, 'f', -1, 64)
				candidate.Wind = &wind
			}
		}

		action, staged, err := s.Merge(ctx, &candidate)
		if err != nil {
			logger.Warn("merge failed", "spot_name", raw.SpotName, "source_url", raw.SourceURL, "error", err)
			summary.Errors++
			metrics.IngestRecords.WithLabelValues("error").Inc()
			continue
		}

		switch action {
		case MergeInserted:
			summary.Inserted++
		case MergeUpdated:
			summary.Updated++
			logger.Debug("filled training record fields", "source_url", raw.SourceURL, "fields", staged)
		default:
			summary.Skipped++
		}
		metrics.IngestRecords.WithLabelValues(action.String()).Inc()
	}

	if len(failures) > 0 {
		if err := WriteFailureReport(s.reportPath, failures); err != nil {
			logger.Error("failed to write failure report", "path", s.reportPath, "error", err)
		} else {
			logger.Info("wrote weather backfill failure report", "path", s.reportPath, "rows", len(failures))
		}
	}

	metrics.IngestPasses.Inc()
	logger.Info("ingestion pass complete",
		"processed", summary.Processed,
		"inserted", summary.Inserted,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"geocode_failures", summary.GeocodeFailures,
		"backfill_failures", summary.BackfillFailures,
		"errors", summary.Errors,
	)

	return summary, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
