package app

import (
	"context"
	"errors"
	"math"
	"testing"

	"quarterfetch/internal/domain"
	"quarterfetch/internal/repository"
	mock_repository "quarterfetch/internal/repository/mocks"
	"quarterfetch/internal/service"
	"quarterfetch/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func f(x float64) *float64 {
	return &x
}

type fetchMocks struct {
	yahoo    *mock_repository.MockStatementRepository
	legacy   *mock_repository.MockStatementRepository
	shares   *mock_repository.MockTrailingSharesRepository
	snapshot *mock_repository.MockSnapshotRepository
}

func newFetchHandler(t *testing.T) (FetchHandler, fetchMocks) {
	ctrl := gomock.NewController(t)
	m := fetchMocks{
		yahoo:    mock_repository.NewMockStatementRepository(ctrl),
		legacy:   mock_repository.NewMockStatementRepository(ctrl),
		shares:   mock_repository.NewMockTrailingSharesRepository(ctrl),
		snapshot: mock_repository.NewMockSnapshotRepository(ctrl),
	}
	m.yahoo.EXPECT().Name().Return("yahoo").AnyTimes()
	m.legacy.EXPECT().Name().Return("datajockey").AnyTimes()

	handler := FetchHandler{
		StatementRepositories:    []repository.StatementRepository{m.yahoo, m.legacy},
		TrailingSharesRepository: m.shares,
		SnapshotRepository:       m.snapshot,
		QuarterlyMetricService:   service.NewQuarterlyMetricService(),
	}
	return handler, m
}

func statement(source string, items domain.PeriodRow) *domain.Statement {
	return &domain.Statement{
		Source: source,
		Periods: []domain.Period{
			{End: util.NewDate(2023, 12, 31), Label: "2023-12-31", Items: items},
		},
	}
}

func TestFetchHandler_Run(t *testing.T) {
	t.Run("falls back to legacy statement and trailing shares", func(t *testing.T) {
		handler, m := newFetchHandler(t)

		m.yahoo.EXPECT().
			GetQuarterly(gomock.Any(), "AAPL").
			Return(statement("yahoo", domain.PeriodRow{
				"Total Revenue": f(100),
				"Diluted EPS":   f(1.5),
			}), nil)
		m.shares.EXPECT().Get(gomock.Any(), "AAPL").Return(f(10), nil)
		m.snapshot.EXPECT().
			WriteTicker("AAPL", domain.QuarterlyResults{
				"2023-12-31": {Revenue: f(100), EPS: f(1.5)},
			}).
			Return(nil)

		m.yahoo.EXPECT().GetQuarterly(gomock.Any(), "ACB").Return(&domain.Statement{}, nil)
		m.legacy.EXPECT().
			GetQuarterly(gomock.Any(), "ACB").
			Return(statement("datajockey", domain.PeriodRow{
				"Revenue":                                f(80),
				"Net Income Applicable To Common Shares": f(1000),
			}), nil)
		m.shares.EXPECT().Get(gomock.Any(), "ACB").Return(f(50), nil)
		m.snapshot.EXPECT().
			WriteTicker("ACB", domain.QuarterlyResults{
				"2023-12-31": {Revenue: f(80), EPS: f(20)},
			}).
			Return(nil)

		m.snapshot.EXPECT().WriteIndex([]string{"AAPL", "ACB"}).Return(nil)

		out, err := handler.Run(context.Background(), RunInput{Tickers: []string{"AAPL", "ACB"}})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL", "ACB"}, out.Processed)
		require.Empty(t, out.Failed)
	})

	t.Run("failing ticker is skipped and the loop continues", func(t *testing.T) {
		handler, m := newFetchHandler(t)

		m.yahoo.EXPECT().GetQuarterly(gomock.Any(), "MSFT").Return(nil, errors.New("timeout"))
		m.legacy.EXPECT().GetQuarterly(gomock.Any(), "MSFT").Return(nil, errors.New("no api key"))

		m.yahoo.EXPECT().
			GetQuarterly(gomock.Any(), "NVDA").
			Return(statement("yahoo", domain.PeriodRow{"Total Revenue": f(1)}), nil)
		m.shares.EXPECT().Get(gomock.Any(), "NVDA").Return(nil, nil)
		m.snapshot.EXPECT().
			WriteTicker("NVDA", domain.QuarterlyResults{"2023-12-31": {Revenue: f(1)}}).
			Return(nil)

		m.snapshot.EXPECT().WriteIndex([]string{"NVDA"}).Return(nil)

		out, err := handler.Run(context.Background(), RunInput{Tickers: []string{"MSFT", "NVDA"}})
		require.NoError(t, err)
		require.Equal(t, []string{"NVDA"}, out.Processed)
		require.ErrorIs(t, out.Failed["MSFT"], ErrNoStatementSource)
	})

	t.Run("no data anywhere is an empty result", func(t *testing.T) {
		handler, m := newFetchHandler(t)

		m.yahoo.EXPECT().GetQuarterly(gomock.Any(), "HRTX").Return(nil, errors.New("timeout"))
		m.legacy.EXPECT().GetQuarterly(gomock.Any(), "HRTX").Return(&domain.Statement{}, nil)
		m.snapshot.EXPECT().WriteTicker("HRTX", domain.QuarterlyResults{}).Return(nil)
		m.snapshot.EXPECT().WriteIndex([]string{"HRTX"}).Return(nil)

		out, err := handler.Run(context.Background(), RunInput{Tickers: []string{"HRTX"}})
		require.NoError(t, err)
		require.Equal(t, []string{"HRTX"}, out.Processed)
	})

	t.Run("trailing shares failure only loses the fallback", func(t *testing.T) {
		handler, m := newFetchHandler(t)

		m.yahoo.EXPECT().
			GetQuarterly(gomock.Any(), "AAPL").
			Return(statement("yahoo", domain.PeriodRow{"Net Income": f(1000)}), nil)
		m.shares.EXPECT().Get(gomock.Any(), "AAPL").Return(nil, errors.New("quote failed"))
		m.snapshot.EXPECT().
			WriteTicker("AAPL", domain.QuarterlyResults{"2023-12-31": {}}).
			Return(nil)
		m.snapshot.EXPECT().WriteIndex([]string{"AAPL"}).Return(nil)

		out, err := handler.Run(context.Background(), RunInput{Tickers: []string{"AAPL"}})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL"}, out.Processed)
	})

	t.Run("write failure skips the ticker", func(t *testing.T) {
		handler, m := newFetchHandler(t)

		m.yahoo.EXPECT().GetQuarterly(gomock.Any(), "AAPL").Return(nil, nil)
		m.legacy.EXPECT().GetQuarterly(gomock.Any(), "AAPL").Return(nil, nil)
		m.snapshot.EXPECT().WriteTicker("AAPL", gomock.Any()).Return(errors.New("disk full"))
		m.snapshot.EXPECT().WriteIndex([]string{}).Return(nil)

		out, err := handler.Run(context.Background(), RunInput{Tickers: []string{"AAPL"}})
		require.NoError(t, err)
		require.Empty(t, out.Processed)
		require.ErrorContains(t, out.Failed["AAPL"], "disk full")
	})

	t.Run("summary is written when requested", func(t *testing.T) {
		handler, m := newFetchHandler(t)

		m.yahoo.EXPECT().
			GetQuarterly(gomock.Any(), "AAPL").
			Return(statement("yahoo", domain.PeriodRow{"Total Revenue": f(5)}), nil)
		m.shares.EXPECT().Get(gomock.Any(), "AAPL").Return(nil, nil)
		m.snapshot.EXPECT().WriteTicker("AAPL", gomock.Any()).Return(nil)
		m.snapshot.EXPECT().WriteIndex([]string{"AAPL"}).Return(nil)
		m.snapshot.EXPECT().
			WriteSummary(map[string]domain.QuarterlyResults{
				"AAPL": {"2023-12-31": {Revenue: f(5)}},
			}).
			Return(nil)

		_, err := handler.Run(context.Background(), RunInput{Tickers: []string{"AAPL"}, WriteSummary: true})
		require.NoError(t, err)
	})

	t.Run("index write failure is returned", func(t *testing.T) {
		handler, m := newFetchHandler(t)
		m.snapshot.EXPECT().WriteIndex([]string{}).Return(errors.New("read-only fs"))

		_, err := handler.Run(context.Background(), RunInput{})
		require.ErrorContains(t, err, "failed to write index")
	})

	t.Run("infinite value only nulls its own field in the snapshot", func(t *testing.T) {
		handler, m := newFetchHandler(t)
		snapshots := repository.NewSnapshotRepository(t.TempDir())
		handler.SnapshotRepository = snapshots

		m.yahoo.EXPECT().
			GetQuarterly(gomock.Any(), "AAPL").
			Return(statement("yahoo", domain.PeriodRow{
				"Total Revenue": f(math.Inf(1)),
				"Diluted EPS":   f(1),
			}), nil)
		m.shares.EXPECT().Get(gomock.Any(), "AAPL").Return(nil, nil)

		out, err := handler.Run(context.Background(), RunInput{Tickers: []string{"AAPL"}})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL"}, out.Processed)

		written, err := snapshots.ReadTicker("AAPL")
		require.NoError(t, err)
		require.Equal(t, domain.QuarterlyResults{"2023-12-31": {EPS: f(1)}}, written)
	})

	t.Run("cancellation stops the loop but keeps the index", func(t *testing.T) {
		handler, m := newFetchHandler(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m.snapshot.EXPECT().WriteIndex([]string{}).Return(nil)

		out, err := handler.Run(ctx, RunInput{Tickers: []string{"AAPL", "MSFT"}})
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, out.Processed)
	})
}
