package service

import (
	"fmt"
	"math"

	"quarterfetch/internal/domain"
	"quarterfetch/internal/util"

	"github.com/shopspring/decimal"
)

// candidate labels per logical field, most specific first
var (
	revenueLabels = []string{
		"Total Revenue",
		"Operating Revenue",
		"Revenue",
	}
	epsLabels = []string{
		"Diluted EPS",
		"Diluted Eps",
		"DilutedEPS",
		"Basic EPS",
		"Basic Eps",
		"BasicEPS",
	}
	netIncomeLabels = []string{
		"Net Income",
		"Net Income Common Stockholders",
		"Net Income Applicable To Common Shares",
	}
	averageSharesLabels = []string{
		"Diluted Average Shares",
		"Basic Average Shares",
		"Diluted Weighted Average Shares",
		"Basic Weighted Average Shares",
	}
)

type QuarterlyMetricService interface {
	Resolve(statement *domain.Statement, trailingShares *float64) domain.QuarterlyResults
}

type quarterlyMetricServiceHandler struct{}

func NewQuarterlyMetricService() QuarterlyMetricService {
	return quarterlyMetricServiceHandler{}
}

// Resolve maps each period of the statement to its revenue and EPS.
// Missing data never fails; it resolves to nil.
//
// trailingShares is a current figure, not a historical one, so EPS
// derived from it for older quarters is an approximation.
func (h quarterlyMetricServiceHandler) Resolve(statement *domain.Statement, trailingShares *float64) domain.QuarterlyResults {
	out := domain.QuarterlyResults{}
	if statement.Empty() {
		return out
	}

	for _, p := range statement.Periods {
		out[util.PeriodKey(p.End, p.Label)] = domain.ResolvedPeriod{
			Revenue: firstExisting(p.Items, revenueLabels),
			EPS:     resolveEps(p.Items, trailingShares),
		}
	}

	return out
}

func firstExisting(row domain.PeriodRow, candidates []string) *float64 {
	for _, c := range candidates {
		if v, ok := row.Get(c); ok {
			return &v
		}
	}
	return nil
}

func resolveEps(row domain.PeriodRow, trailingShares *float64) *float64 {
	if eps := firstExisting(row, epsLabels); eps != nil {
		return eps
	}

	netIncome := firstExisting(row, netIncomeLabels)
	if netIncome == nil {
		return nil
	}

	shares := firstExisting(row, averageSharesLabels)
	if shares == nil {
		shares = trailingShares
	}
	if shares == nil || math.IsNaN(*shares) || *shares <= 0 {
		return nil
	}

	eps, err := divide(*netIncome, *shares)
	if err != nil {
		return nil
	}
	return &eps
}

func divide(numerator, denominator float64) (out float64, err error) {
	defer func() {
		// decimal panics on non-finite floats
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to divide %v by %v: %v", numerator, denominator, r)
		}
	}()

	out = decimal.NewFromFloat(numerator).
		Div(decimal.NewFromFloat(denominator)).
		InexactFloat64()
	if math.IsInf(out, 0) || math.IsNaN(out) {
		return 0, fmt.Errorf("dividing %v by %v is not finite", numerator, denominator)
	}
	return out, nil
}
