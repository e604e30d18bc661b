package datajockey

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"quarterfetch/internal/logger"
)

const DefaultBaseUrl = "https://api.datajockey.io"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseUrl    string
}

func NewClient(apiKey string) Client {
	return Client{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
		ApiKey:     apiKey,
		BaseUrl:    DefaultBaseUrl,
	}
}

// Fields maps a period label like "2023Q4" to the value reported for it.
type Fields struct {
	Revenue                  map[string]int64   `json:"revenue"`
	NetIncome                map[string]int64   `json:"net_income"`
	SharesOutstandingDiluted map[string]int64   `json:"shares_outstanding_diluted"`
	SharesOutstandingBasic   map[string]int64   `json:"shares_outstanding_basic"`
	EpsDiluted               map[string]float64 `json:"eps_diluted"`
	EpsBasic                 map[string]float64 `json:"eps_basic"`
}

type FinancialResponse struct {
	Currency    string `json:"currency"`
	CompanyInfo struct {
		CIK    string `json:"cik"`
		Ticker string `json:"ticker"`
		Name   string `json:"name"`
	} `json:"company_info"`
	FinancialData struct {
		Quarterly Fields `json:"quarterly"`
		Annual    Fields `json:"annual"`
	} `json:"financial_data"`
}

func (c Client) GetAssetMetrics(ctx context.Context, symbol string) (*FinancialResponse, error) {
	baseUrl := c.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	query := url.Values{}
	query.Set("apikey", c.ApiKey)
	query.Set("ticker", symbol)
	query.Set("period", "Q")
	endpoint := fmt.Sprintf("%s/v0/company/financials?%s", baseUrl, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpClient := c.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	response, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	var responseJson FinancialResponse
	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == http.StatusTooManyRequests {
		logger.Debug("datajockey rate limit hit for %s", symbol)
		return nil, fmt.Errorf("rate limited by datajockey (status code %d)", response.StatusCode)
	} else if response.StatusCode != http.StatusOK {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return nil, fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, errJson.Error)
	}

	err = json.Unmarshal(responseBytes, &responseJson)
	if err != nil {
		return nil, err
	}

	return &responseJson, nil
}
