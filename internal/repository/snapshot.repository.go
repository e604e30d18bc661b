package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"quarterfetch/internal/domain"

	"github.com/gocarina/gocsv"
)

//go:generate mockgen -source=snapshot.repository.go -destination=mocks/mock_snapshot.repository.go

const (
	indexFile   = "index.json"
	summaryFile = "summary.csv"
)

type SnapshotRepository interface {
	WriteTicker(symbol string, results domain.QuarterlyResults) error
	ReadTicker(symbol string) (domain.QuarterlyResults, error)
	WriteIndex(symbols []string) error
	ReadIndex() ([]string, error)
	WriteSummary(results map[string]domain.QuarterlyResults) error
}

type snapshotRepositoryHandler struct {
	Dir string
}

func NewSnapshotRepository(dir string) SnapshotRepository {
	return snapshotRepositoryHandler{Dir: dir}
}

type summaryRow struct {
	Ticker  string `csv:"ticker"`
	Date    string `csv:"date"`
	Revenue string `csv:"revenue"`
	EPS     string `csv:"eps"`
}

func (h snapshotRepositoryHandler) tickerPath(symbol string) (string, error) {
	if symbol == "" || strings.ContainsAny(symbol, `/\`) || symbol == "." || symbol == ".." {
		return "", fmt.Errorf("invalid ticker symbol %q", symbol)
	}
	return filepath.Join(h.Dir, symbol+".json"), nil
}

func (h snapshotRepositoryHandler) WriteTicker(symbol string, results domain.QuarterlyResults) error {
	path, err := h.tickerPath(symbol)
	if err != nil {
		return err
	}
	if results == nil {
		results = domain.QuarterlyResults{}
	}
	return h.writeJson(path, results)
}

func (h snapshotRepositoryHandler) ReadTicker(symbol string) (domain.QuarterlyResults, error) {
	path, err := h.tickerPath(symbol)
	if err != nil {
		return nil, err
	}
	out := domain.QuarterlyResults{}
	if err := readJson(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h snapshotRepositoryHandler) WriteIndex(symbols []string) error {
	if symbols == nil {
		symbols = []string{}
	}
	return h.writeJson(filepath.Join(h.Dir, indexFile), symbols)
}

func (h snapshotRepositoryHandler) ReadIndex() ([]string, error) {
	out := []string{}
	if err := readJson(filepath.Join(h.Dir, indexFile), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (h snapshotRepositoryHandler) WriteSummary(results map[string]domain.QuarterlyResults) error {
	rows := []summaryRow{}
	for symbol, periods := range results {
		for date, p := range periods {
			rows = append(rows, summaryRow{
				Ticker:  symbol,
				Date:    date,
				Revenue: formatNullable(p.Revenue),
				EPS:     formatNullable(p.EPS),
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Ticker != rows[j].Ticker {
			return rows[i].Ticker < rows[j].Ticker
		}
		return rows[i].Date < rows[j].Date
	})

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", h.Dir, err)
	}
	path := filepath.Join(h.Dir, summaryFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func (h snapshotRepositoryHandler) writeJson(path string, v interface{}) error {
	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir %s: %w", h.Dir, err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readJson(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
