package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// FailureRow identifies a record that could not be backfilled with weather
// data during an ingestion pass. These rows are written out for manual
// follow-up and are never retried automatically.
type FailureRow struct {
	SpotName  string
	Latitude  float64
	Longitude float64
	Date      string
	SourceURL string
}

// WriteFailureReport writes the failure rows as CSV, replacing any report
// from a previous pass.
func WriteFailureReport(path string, rows []FailureRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create failure report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"spot_name", "latitude", "longitude", "date", "blog_url"}); err != nil {
		return fmt.Errorf("write failure report header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.SpotName,
			strconv.FormatFloat(row.Latitude, 'f', -1, 64),
			strconv.FormatFloat(row.Longitude, 'f', -1, 64),
			row.Date,
			row.SourceURL,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write failure report row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush failure report: %w", err)
	}

	return nil
}
