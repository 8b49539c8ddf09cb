// Package traydner — HTTP-клиент удалённого торгового API (bearer-токен).
package traydner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"

	"traydner_bot/internal/models"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type priceResponse struct {
	Price float64 `json:"price"`
}

func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	var resp priceResponse
	err := c.do(ctx, http.MethodGet, "price", url.Values{"symbol": {symbol}}, &resp)
	if err != nil {
		return 0, errors.Wrapf(err, "price %s", symbol)
	}
	if resp.Price <= 0 {
		return 0, errors.Errorf("price %s: non-positive price %v", symbol, resp.Price)
	}
	return resp.Price, nil
}

type historyResponse struct {
	History []models.Candle `json:"history"`
}

// History отдаёт свечи как есть — порядок не гарантирован,
// сортирует и валидирует серия.
func (c *Client) History(ctx context.Context, symbol, resolution string, limit int) ([]models.Candle, error) {
	params := url.Values{
		"symbol":     {symbol},
		"resolution": {resolution},
		"limit":      {strconv.Itoa(limit)},
	}
	var resp historyResponse
	if err := c.do(ctx, http.MethodGet, "history", params, &resp); err != nil {
		return nil, errors.Wrapf(err, "history %s@%s", symbol, resolution)
	}
	return resp.History, nil
}

type balanceResponse struct {
	Balance models.Balance `json:"balance"`
}

func (c *Client) Balance(ctx context.Context) (models.Balance, error) {
	var resp balanceResponse
	if err := c.do(ctx, http.MethodGet, "balance", nil, &resp); err != nil {
		return models.Balance{}, errors.Wrap(err, "balance")
	}
	return resp.Balance, nil
}

// Trade исполняет заявку; в ответе цена фактического исполнения.
func (c *Client) Trade(ctx context.Context, symbol, side string, quantity float64) (models.TradeResult, error) {
	params := url.Values{
		"symbol":   {symbol},
		"side":     {side},
		"quantity": {strconv.FormatFloat(quantity, 'f', -1, 64)},
	}
	var resp models.TradeResult
	if err := c.do(ctx, http.MethodPost, "trade", params, &resp); err != nil {
		return models.TradeResult{}, errors.Wrapf(err, "trade %s %s %v", symbol, side, quantity)
	}
	return resp, nil
}

type marketStatusResponse struct {
	IsOpen bool `json:"isOpen"`
}

func (c *Client) MarketStatus(ctx context.Context, symbol string) (bool, error) {
	var resp marketStatusResponse
	err := c.do(ctx, http.MethodGet, "market_status", url.Values{"symbol": {symbol}}, &resp)
	if err != nil {
		return false, errors.Wrapf(err, "market_status %s", symbol)
	}
	return resp.IsOpen, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, out interface{}) error {
	u := c.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	rb, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("http %d: %s", resp.StatusCode, string(rb))
	}
	if err := sonic.Unmarshal(rb, out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
