package repository

import (
	"context"
	"fmt"
	"time"

	"quarterfetch/internal/domain"
	"quarterfetch/internal/util"
	"quarterfetch/pkg/datajockey"
)

type DataJockeyClient interface {
	GetAssetMetrics(ctx context.Context, symbol string) (*datajockey.FinancialResponse, error)
}

type legacyStatementRepositoryHandler struct {
	Client DataJockeyClient
}

// NewLegacyStatementRepository reads the older per-field statement
// shape, where every line item is its own map of period to value.
func NewLegacyStatementRepository(client DataJockeyClient) StatementRepository {
	return legacyStatementRepositoryHandler{Client: client}
}

func (h legacyStatementRepositoryHandler) Name() string {
	return "datajockey"
}

func (h legacyStatementRepositoryHandler) GetQuarterly(ctx context.Context, symbol string) (*domain.Statement, error) {
	response, err := h.Client.GetAssetMetrics(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get dj asset metrics for %s: %w", symbol, err)
	}

	return invertDjResponse(symbol, response.FinancialData.Quarterly), nil
}

func invertDjResponse(symbol string, in datajockey.Fields) *domain.Statement {
	mappedValues := map[string]domain.PeriodRow{}
	add := func(period, label string, v float64) {
		if _, ok := mappedValues[period]; !ok {
			mappedValues[period] = domain.PeriodRow{}
		}
		mappedValues[period][label] = &v
	}

	for k, v := range in.Revenue {
		add(k, "Revenue", float64(v))
	}
	for k, v := range in.NetIncome {
		add(k, "Net Income Applicable To Common Shares", float64(v))
	}
	for k, v := range in.EpsDiluted {
		add(k, "Diluted Eps", v)
	}
	for k, v := range in.EpsBasic {
		add(k, "Basic Eps", v)
	}
	for k, v := range in.SharesOutstandingDiluted {
		add(k, "Diluted Weighted Average Shares", float64(v))
	}
	for k, v := range in.SharesOutstandingBasic {
		add(k, "Basic Weighted Average Shares", float64(v))
	}

	out := &domain.Statement{
		Source:  "datajockey",
		Symbol:  symbol,
		Periods: make([]domain.Period, 0, len(mappedValues)),
	}
	for k, row := range mappedValues {
		var end time.Time
		if year, quarter, err := util.ExtractYearAndQuarter(k); err == nil {
			end = util.QuarterEnd(year, quarter)
		}
		out.Periods = append(out.Periods, domain.Period{
			End:   end,
			Label: k,
			Items: row,
		})
	}
	sortPeriods(out.Periods)

	return out
}
