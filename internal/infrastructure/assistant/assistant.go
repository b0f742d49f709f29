// Package assistant содержит клиент внешнего сервиса генерации текста,
// на котором работает чат-ассистент витрины.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akshop/go-backend/internal/cfg"
	"github.com/akshop/go-backend/internal/usecase"
	"github.com/akshop/go-backend/pkg/e"
	"github.com/akshop/go-backend/pkg/jitter"
	"github.com/akshop/go-backend/pkg/logger"
	"github.com/sony/gobreaker/v2"
)

// Client — клиент сервиса генерации текста с ретраями и circuit breaker.
// Открытый breaker сразу возвращает ошибку, не дожидаясь таймаутов,
// чтобы чат деградировал быстро.
type Client struct {
	http    *http.Client
	cfg     *cfg.AssistantCfg
	breaker *gobreaker.CircuitBreaker[string]
	logger  logger.Logger
}

func NewClient(cfg *cfg.AssistantCfg, logger logger.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "assistant",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		breaker: breaker,
		logger:  logger,
	}
}

// generateRequest — тело запроса к сервису генерации.
type generateRequest struct {
	Model             string `json:"model"`
	SystemInstruction string `json:"systemInstruction,omitempty"`
	Message           string `json:"message"`
}

// generateResponse — тело ответа сервиса генерации.
type generateResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// GenerateReply запрашивает ответ ассистента с retry-логикой и экспоненциальной задержкой.
func (c *Client) GenerateReply(ctx context.Context, req *usecase.AssistantReq) (string, error) {
	const (
		op         = "assistant.Client.GenerateReply"
		baseJitter = 500 * time.Millisecond
		maxJitter  = 5 * time.Second
	)

	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		reply, err := c.breaker.Execute(func() (string, error) {
			return c.generate(ctx, req)
		})
		if err == nil {
			return reply, nil
		}
		lastErr = err

		if errors.Is(err, gobreaker.ErrOpenState) || ctx.Err() != nil {
			break
		}
		if attempt == c.cfg.MaxRetries-1 {
			break
		}

		sleepTime := jitter.Backoff(baseJitter, maxJitter, attempt, jitter.DefaultFactor)
		c.logger.Warnf("assistant request failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return "", e.Wrap(op, ctx.Err())
		}
	}

	return "", e.Wrap(op, lastErr)
}

// generate выполняет один запрос к сервису генерации.
func (c *Client) generate(ctx context.Context, req *usecase.AssistantReq) (string, error) {
	const op = "assistant.Client.generate"

	body, err := json.Marshal(generateRequest{
		Model:             c.cfg.Model,
		SystemInstruction: req.SystemInstruction,
		Message:           req.Message,
	})
	if err != nil {
		return "", e.Wrap(op, err)
	}

	url := strings.TrimSuffix(c.cfg.Addr, "/") + "/v1/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", e.Wrap(op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", e.Wrap(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", e.Wrap(op, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", e.Wrap(op, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, data))
	}

	var genResp generateResponse
	if err := json.Unmarshal(data, &genResp); err != nil {
		return "", e.Wrap(op, err)
	}
	if genResp.Error != "" {
		return "", e.Wrap(op, fmt.Errorf("generation error: %s", genResp.Error))
	}

	return genResp.Text, nil
}
