package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"quarterfetch/internal/domain"
	"quarterfetch/internal/util"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	DefaultYahooBaseUrl = "https://query2.finance.yahoo.com"
	timeseriesPath      = "/ws/fundamentals-timeseries/v1/finance/timeseries/{symbol}"
	quarterlyPrefix     = "quarterly"
	yahooUserAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// income statement series requested from the timeseries endpoint
var yahooIncomeSeries = []string{
	"TotalRevenue",
	"OperatingRevenue",
	"NetIncome",
	"NetIncomeCommonStockholders",
	"DilutedEPS",
	"BasicEPS",
	"DilutedAverageShares",
	"BasicAverageShares",
}

type yahooStatementRepositoryHandler struct {
	Client       *resty.Client
	HistoryYears int
}

func NewYahooStatementRepository(baseUrl string, historyYears int) StatementRepository {
	if baseUrl == "" {
		baseUrl = DefaultYahooBaseUrl
	}
	if historyYears <= 0 {
		historyYears = 5
	}
	client := resty.New().
		SetBaseURL(baseUrl).
		SetHeader("User-Agent", yahooUserAgent).
		SetHeader("Accept", "application/json").
		SetTimeout(30 * time.Second)

	return yahooStatementRepositoryHandler{
		Client:       client,
		HistoryYears: historyYears,
	}
}

func (h yahooStatementRepositoryHandler) Name() string {
	return "yahoo"
}

func (h yahooStatementRepositoryHandler) GetQuarterly(ctx context.Context, symbol string) (*domain.Statement, error) {
	types := make([]string, 0, len(yahooIncomeSeries))
	for _, s := range yahooIncomeSeries {
		types = append(types, quarterlyPrefix+s)
	}
	now := time.Now().UTC()

	resp, err := h.Client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"symbol":  symbol,
			"type":    strings.Join(types, ","),
			"period1": strconv.FormatInt(now.AddDate(-h.HistoryYears, 0, 0).Unix(), 10),
			"period2": strconv.FormatInt(now.Unix(), 10),
		}).
		Get(timeseriesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get yahoo timeseries for %s: %w", symbol, err)
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("yahoo timeseries for %s failed with status code %d: %s", symbol, resp.StatusCode(), resp.String())
	}

	return parseTimeseries(symbol, resp.String())
}

func parseTimeseries(symbol, body string) (*domain.Statement, error) {
	if !gjson.Valid(body) {
		return nil, fmt.Errorf("invalid json in yahoo timeseries response for %s", symbol)
	}
	if e := gjson.Get(body, "timeseries.error"); e.Exists() && e.Type != gjson.Null {
		return nil, fmt.Errorf("yahoo timeseries error for %s: %s", symbol, e.Get("description").String())
	}

	periods := map[string]*domain.Period{}
	for _, result := range gjson.Get(body, "timeseries.result").Array() {
		seriesType := result.Get("meta.type.0").String()
		if seriesType == "" {
			continue
		}
		label := humanizeLabel(strings.TrimPrefix(seriesType, quarterlyPrefix))

		for _, entry := range result.Get(seriesType).Array() {
			if !entry.IsObject() {
				continue
			}
			asOf := entry.Get("asOfDate").String()
			p, ok := periods[asOf]
			if !ok {
				end, err := util.ParseDate(asOf)
				if err != nil {
					end = time.Time{}
				}
				p = &domain.Period{
					End:   end,
					Label: asOf,
					Items: domain.PeriodRow{},
				}
				periods[asOf] = p
			}

			raw := entry.Get("reportedValue.raw")
			if raw.Type == gjson.Number {
				v := raw.Float()
				p.Items[label] = &v
			} else {
				p.Items[label] = nil
			}
		}
	}

	out := &domain.Statement{
		Source:  "yahoo",
		Symbol:  symbol,
		Periods: make([]domain.Period, 0, len(periods)),
	}
	for _, p := range periods {
		out.Periods = append(out.Periods, *p)
	}
	sortPeriods(out.Periods)

	return out, nil
}

// sortPeriods orders dated periods oldest first, undated ones last.
func sortPeriods(periods []domain.Period) {
	sort.Slice(periods, func(i, j int) bool {
		a, b := periods[i], periods[j]
		if a.End.IsZero() != b.End.IsZero() {
			return b.End.IsZero()
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return a.Label < b.Label
	})
}
