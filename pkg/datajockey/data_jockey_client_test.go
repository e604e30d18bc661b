package datajockey

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClient_GetAssetMetrics(t *testing.T) {
	t.Run("decodes quarterly fields", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v0/company/financials", r.URL.Path)
			require.Equal(t, "key", r.URL.Query().Get("apikey"))
			require.Equal(t, "MSFT", r.URL.Query().Get("ticker"))
			require.Equal(t, "Q", r.URL.Query().Get("period"))
			w.Write([]byte(`{
				"currency": "USD",
				"company_info": {"cik": "789019", "ticker": "MSFT", "name": "Microsoft"},
				"financial_data": {
					"quarterly": {
						"revenue": {"2023Q4": 62020000000},
						"net_income": {"2023Q4": 21870000000},
						"eps_diluted": {"2023Q4": 2.93}
					}
				}
			}`))
		}))
		defer server.Close()

		c := NewClient("key")
		c.BaseUrl = server.URL
		out, err := c.GetAssetMetrics(context.Background(), "MSFT")
		require.NoError(t, err)

		require.Equal(t, "MSFT", out.CompanyInfo.Ticker)
		require.Equal(
			t,
			"",
			cmp.Diff(
				Fields{
					Revenue:    map[string]int64{"2023Q4": 62020000000},
					NetIncome:  map[string]int64{"2023Q4": 21870000000},
					EpsDiluted: map[string]float64{"2023Q4": 2.93},
				},
				out.FinancialData.Quarterly,
			),
		)
	})

	t.Run("surfaces api errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "ticker not found"}`))
		}))
		defer server.Close()

		c := NewClient("key")
		c.BaseUrl = server.URL
		_, err := c.GetAssetMetrics(context.Background(), "ZZZZ")
		require.ErrorContains(t, err, "ticker not found")
	})

	t.Run("rate limit is an error", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		c := NewClient("key")
		c.BaseUrl = server.URL
		_, err := c.GetAssetMetrics(context.Background(), "MSFT")
		require.ErrorContains(t, err, "rate limited")
		require.Equal(t, 1, calls)
	})
}
