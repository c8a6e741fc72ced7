package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ibeloyar/courierdesk/internal/model"
	"github.com/ibeloyar/courierdesk/pgk/auth"
)

// readBody - читает и парсит JSON и Text/Plain тело запроса в структуру T
func readBody[T any](r *http.Request) (T, error) {
	var body T

	contentType := r.Header.Get("Content-Type")

	if contentType == "" {
		contentType = "application/json"
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if strings.HasPrefix(contentType, "text/plain") {
		switch any(body).(type) {
		case string:
			if len(bodyBytes) == 0 {
				return body, nil
			}

			return any(string(bodyBytes)).(T), nil
		default:
			return body, fmt.Errorf("failed to read request body: %s", contentType)
		}
	}

	if strings.HasPrefix(contentType, "application/json") {
		if err := json.Unmarshal(bodyBytes, &body); err != nil {
			return body, fmt.Errorf("failed to read request body %s: %w", contentType, err)
		}
	}

	return body, nil
}

// readOTPCode - код из {"code": "..."} или из text/plain тела
func readOTPCode(r *http.Request) (string, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		code, err := readBody[string](r)
		return strings.TrimSpace(code), err
	}

	body, err := readBody[model.VerifyOTPDTO](r)
	if err != nil {
		return "", err
	}

	return body.Code, nil
}

// writeJSON - записывает ответ в формате JSON и добавляет заголовок Content-Type: application/json
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

func writeAPIError(w http.ResponseWriter, apiErr *model.APIError) {
	if apiErr.Code == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Error(w, apiErr.Message, apiErr.Code)
}

// riderID - id курьера из проверенного токена
func riderID(r *http.Request) (int64, bool) {
	info := auth.GetTokenInfo[model.TokenInfo](r)
	if info == nil {
		return 0, false
	}

	return info.ID, true
}
