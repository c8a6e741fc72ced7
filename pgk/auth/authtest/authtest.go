// Package authtest - хелперы для тестов хендлеров за auth middleware
package authtest

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/ibeloyar/courierdesk/pgk/auth"
)

// NewRequest - запрос с уже проверенным токеном
func NewRequest[T any](method, target string, info *T, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	return r.WithContext(auth.WithTokenInfo(r.Context(), info))
}
