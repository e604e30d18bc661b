package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"quarterfetch/internal/logger"
)

var DefaultTickers = []string{"AAPL", "MSFT", "NVDA", "ACB", "HRTX"}

type TickerListRepository interface {
	Load(path string) []string
}

type tickerListRepositoryHandler struct{}

func NewTickerListRepository() TickerListRepository {
	return tickerListRepositoryHandler{}
}

// Load reads a JSON array of symbols. It never fails: a missing,
// malformed or empty file yields DefaultTickers.
func (h tickerListRepositoryHandler) Load(path string) []string {
	if path == "" {
		return defaultTickers()
	}
	tickers, err := readTickerFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("using default tickers: %v", err)
		}
		return defaultTickers()
	}
	if len(tickers) == 0 {
		logger.Warn("no tickers in %s, using defaults", path)
		return defaultTickers()
	}
	return tickers
}

func readTickerFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := []string{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse ticker list %s: %w", path, err)
	}

	seen := map[string]bool{}
	out := []string{}
	for _, s := range raw {
		symbol := strings.ToUpper(strings.TrimSpace(s))
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		out = append(out, symbol)
	}
	return out, nil
}

func defaultTickers() []string {
	return append([]string{}, DefaultTickers...)
}
