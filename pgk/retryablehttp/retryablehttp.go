package retryablehttp

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

var ErrRetriesExhausted = errors.New("last attempt failed")

type RetryConfig struct {
	MaxRetries int           // Максимум повторов (по умолчанию 3)
	BaseDelay  time.Duration // Базовая задержка (по умолчанию 100ms)
	MaxDelay   time.Duration // Максимальная задержка (по умолчанию 5s)
	MaxJitter  time.Duration // Максимальный jitter (по умолчанию 100ms)
	Timeout    time.Duration // Таймаут одной попытки, 0 - без таймаута
}

type RetryableClient struct {
	client      *http.Client
	retryConfig RetryConfig
}

func NewRetryableClient(config RetryConfig) *RetryableClient {
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.BaseDelay == 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay == 0 {
		config.MaxDelay = 5 * time.Second
	}
	if config.MaxJitter == 0 {
		config.MaxJitter = 100 * time.Millisecond
	}

	return &RetryableClient{
		client:      &http.Client{Timeout: config.Timeout},
		retryConfig: config,
	}
}

// isRetryable определяет, нужно ли делать retry
func (c *RetryableClient) isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		// Сетевые ошибки всегда retry
		return true
	}

	if resp == nil {
		return false
	}

	statusCode := resp.StatusCode
	return statusCode == 0 ||
		(statusCode >= 500 && statusCode <= 599) ||
		statusCode == http.StatusTooManyRequests ||
		statusCode == http.StatusRequestTimeout
}

// Do выполняет запрос с повторами. Тело запроса перечитывается через
// req.GetBody, поэтому POST с bytes/strings reader повторяется корректно.
func (c *RetryableClient) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		attemptReq, buildErr := c.attemptRequest(ctx, req, attempt)
		if buildErr != nil {
			return nil, buildErr
		}

		resp, err = c.client.Do(attemptReq)

		if err == nil && !c.isRetryable(resp, nil) {
			return resp, nil
		}

		// последняя попытка - отдаём ответ как есть, тело не закрываем
		if attempt == c.retryConfig.MaxRetries {
			if resp != nil {
				return resp, fmt.Errorf("%w: %s", ErrRetriesExhausted, resp.Status)
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
		}

		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		delay := c.backoffDelay(attempt)
		if d, ok := retryAfter(resp); ok {
			delay = min(d, c.retryConfig.MaxDelay)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	return nil, fmt.Errorf("unexpected error")
}

func (c *RetryableClient) attemptRequest(ctx context.Context, req *http.Request, attempt int) (*http.Request, error) {
	attemptReq := req.Clone(ctx)
	if attempt == 0 || req.Body == nil || req.Body == http.NoBody {
		return attemptReq, nil
	}

	if req.GetBody == nil {
		return nil, fmt.Errorf("request body cannot be replayed for retry")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	attemptReq.Body = body

	return attemptReq, nil
}

// backoffDelay вычисляет задержку с экспоненциальным ростом и jitter
func (c *RetryableClient) backoffDelay(attempt int) time.Duration {
	backoff := time.Duration(1<<uint(attempt)) * c.retryConfig.BaseDelay
	if backoff > c.retryConfig.MaxDelay {
		backoff = c.retryConfig.MaxDelay
	}

	jitter := time.Duration(rand.Int63n(int64(c.retryConfig.MaxJitter)))
	return backoff + jitter
}

// retryAfter - задержка из заголовка Retry-After (секунды или HTTP-дата)
func retryAfter(resp *http.Response) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}

	value := resp.Header.Get("Retry-After")
	if value == "" {
		return 0, false
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second, true
	}

	if at, err := http.ParseTime(value); err == nil {
		return max(time.Until(at), 0), true
	}

	return 0, false
}
