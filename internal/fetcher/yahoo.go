package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"tickerlens/internal/model"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewYahooFetcher creates a new Yahoo Finance fetcher, optionally routed
// through an HTTPS proxy.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		BaseURL: defaultBaseURL,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from the Yahoo Finance chart API.
// Price arrays use pointers because holidays and listing gaps come back
// as JSON nulls.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type datedPrice struct {
	Date  time.Time
	Price float64
}

// FetchDailyCloses retrieves adjusted close prices for every ticker and
// assembles them into one table over the union of trading dates. Dates a
// ticker has no price for are left as missing cells for the cleaner to
// resolve.
func (f *YahooFetcher) FetchDailyCloses(ctx context.Context, tickers []string, start, end time.Time) (*model.PriceTable, error) {
	if end.IsZero() {
		end = time.Now().UTC()
	}

	series := make([][]datedPrice, len(tickers))
	dateSet := make(map[time.Time]struct{})
	for i, ticker := range tickers {
		prices, err := f.fetchTicker(ctx, ticker, start, end)
		if err != nil {
			return nil, err
		}
		series[i] = prices
		for _, p := range prices {
			dateSet[p.Date] = struct{}{}
		}
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	index := make(map[time.Time]int, len(dates))
	for i, d := range dates {
		index[d] = i
	}

	table := model.NewPriceTable(append([]string(nil), tickers...), dates)
	for j, prices := range series {
		for _, p := range prices {
			table.Values[index[p.Date]][j] = p.Price
		}
	}
	return table, nil
}

func (f *YahooFetcher) fetchTicker(ctx context.Context, ticker string, start, end time.Time) ([]datedPrice, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&includeAdjustedClose=true",
		f.BaseURL, url.PathEscape(strings.ToUpper(ticker)), start.Unix(), end.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", ticker, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ticker, ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w: %w", ticker, ErrNetwork, err)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: yahoo status %d: %w", ticker, resp.StatusCode, ErrNetwork)
		}
		return nil, fmt.Errorf("%s: yahoo decode: %w", ticker, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%s: yahoo: %s: %w", ticker, chart.Chart.Error.Description, ErrDataUnavailable)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, fmt.Errorf("%s: yahoo returned no rows: %w", ticker, ErrDataUnavailable)
	}

	result := chart.Chart.Result[0]

	// Prefer the split/dividend adjusted series, fall back to raw close.
	var closes []*float64
	if len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) > 0 {
		closes = result.Indicators.AdjClose[0].AdjClose
	} else if len(result.Indicators.Quote) > 0 {
		closes = result.Indicators.Quote[0].Close
	}
	if len(closes) == 0 {
		return nil, fmt.Errorf("%s: yahoo returned no close series: %w", ticker, ErrDataUnavailable)
	}

	prices := make([]datedPrice, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue // null bar (holiday, listing gap)
		}
		t := time.Unix(ts, 0).UTC()
		prices = append(prices, datedPrice{
			Date:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
			Price: *closes[i],
		})
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("%s: yahoo returned only null bars: %w", ticker, ErrDataUnavailable)
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i].Date.Before(prices[j].Date) })
	return prices, nil
}
