// Package catalog loads event records from an external CSV source.
// When the source is missing or unreadable the loader falls back to a
// deterministic built-in fixture set, so the service degrades instead of
// failing.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/okian/davos/internal/domain/model"
	"github.com/okian/davos/pkg/logger"
)

// Field defaults applied when a source row omits a column.
const (
	defaultLocation = "Davos Congress Centre"
	defaultVenue    = "Main Hall"
	defaultCapacity = 100
	defaultTrack    = "General"
	defaultLat      = 46.8027 // Davos town center
	defaultLon      = 9.8360
)

// listSeparator splits multi-valued CSV columns (topics, speakers).
const listSeparator = ";"

// Loader reads catalogs from a CSV file.
type Loader struct {
	logger logger.Logger
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// NewLoader creates a Loader with configuration options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logger.Get()
	}
	return l
}

// Load parses events from the CSV file at path. The second return value
// reports whether the fixture catalog was used. Only a completely
// unreadable source triggers the fallback; individual malformed rows are
// skipped with a warning.
func (l *Loader) Load(ctx context.Context, path string) ([]model.Event, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		l.logger.Warn(ctx, "events file unavailable; using fixture catalog",
			logger.String("path", path),
			logger.Error(err),
		)
		return Fixtures(), true, nil
	}
	defer func() { _ = f.Close() }()

	events, err := l.parse(ctx, f)
	if err != nil {
		l.logger.Warn(ctx, "events file unreadable; using fixture catalog",
			logger.String("path", path),
			logger.Error(err),
		)
		return Fixtures(), true, nil
	}
	if len(events) == 0 {
		l.logger.Warn(ctx, "events file contained no rows; using fixture catalog",
			logger.String("path", path),
		)
		return Fixtures(), true, nil
	}

	l.logger.Info(ctx, "loaded events",
		logger.String("path", path),
		logger.Int("count", len(events)),
	)
	return events, false, nil
}

// parse reads header-keyed CSV rows into events, enforcing id uniqueness
// (first occurrence wins).
func (l *Loader) parse(ctx context.Context, f *os.File) ([]model.Event, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 1 {
		return nil, nil
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := header["id"]; !ok {
		return nil, ErrMissingIDColumn
	}

	seen := make(map[string]struct{}, len(records)-1)
	events := make([]model.Event, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := rowReader{header: header, record: rec}

		id := row.get("id")
		if id == "" {
			l.logger.Warn(ctx, "skipping event row without id")
			continue
		}
		if _, dup := seen[id]; dup {
			l.logger.Warn(ctx, "skipping duplicate event id", logger.String("id", id))
			continue
		}
		seen[id] = struct{}{}

		events = append(events, model.Event{
			ID:          id,
			Title:       row.get("title"),
			Description: row.get("description"),
			Topics:      row.getList("topics"),
			Location:    row.getDefault("location", defaultLocation),
			Venue:       row.getDefault("venue", defaultVenue),
			StartTime:   row.get("start_time"),
			EndTime:     row.get("end_time"),
			Speakers:    row.getList("speakers"),
			Capacity:    row.getInt("capacity", defaultCapacity),
			Track:       row.getDefault("track", defaultTrack),
			Lat:         row.getFloat("lat", defaultLat),
			Lon:         row.getFloat("lon", defaultLon),
			Address:     row.get("address"),
			Website:     row.get("website"),
		})
	}
	return events, nil
}

// rowReader resolves columns by header name with typed defaults.
type rowReader struct {
	header map[string]int
	record []string
}

func (r rowReader) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r rowReader) getDefault(col, fallback string) string {
	if v := r.get(col); v != "" {
		return v
	}
	return fallback
}

func (r rowReader) getList(col string) []string {
	raw := r.get(col)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (r rowReader) getInt(col string, fallback int) int {
	v, err := strconv.Atoi(r.get(col))
	if err != nil {
		return fallback
	}
	return v
}

func (r rowReader) getFloat(col string, fallback float64) float64 {
	v, err := strconv.ParseFloat(r.get(col), 64)
	if err != nil {
		return fallback
	}
	return v
}
