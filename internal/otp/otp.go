// Package otp проверяет одноразовые коды, которые клиент называет курьеру
// при передаче заказа.
package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ibeloyar/courierdesk/pgk/retryablehttp"
)

const CodeLength = 6

// ValidFormat - ровно шесть десятичных цифр
func ValidFormat(code string) bool {
	if len(code) != CodeLength {
		return false
	}

	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}

	return true
}

// FormatVerifier принимает любой корректно оформленный код.
// Сервер код не выдавал, сверять не с чем: это заглушка, а не защита.
type FormatVerifier struct{}

func (FormatVerifier) Verify(_ context.Context, _ string, code string) (bool, error) {
	return ValidFormat(code), nil
}

type verifyRequest struct {
	OrderID string `json:"orderId"`
	Code    string `json:"code"`
}

// RemoteVerifier сверяет код с сервисом, который его выдал
type RemoteVerifier struct {
	address string
	client  *retryablehttp.RetryableClient
}

func NewRemoteVerifier(address string, client *retryablehttp.RetryableClient) *RemoteVerifier {
	base := strings.TrimRight(address, "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}

	return &RemoteVerifier{
		address: base,
		client:  client,
	}
}

func (v *RemoteVerifier) Verify(ctx context.Context, orderID, code string) (bool, error) {
	if !ValidFormat(code) {
		return false, nil
	}

	body, err := json.Marshal(verifyRequest{OrderID: orderID, Code: code})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.address+"/api/otp/verify", bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(ctx, req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return false, fmt.Errorf("otp verify request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return true, nil
	case http.StatusUnprocessableEntity, http.StatusForbidden, http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("otp verify request failed: %s", http.StatusText(resp.StatusCode))
	}
}
