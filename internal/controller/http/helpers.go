package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ibeloyar/hotelportal/internal/model"
)

var errEmptyBody = errors.New("empty request body")

// readBody - читает и парсит JSON тело запроса в структуру T
func readBody[T any](r *http.Request) (T, error) {
	var body T

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	if !strings.HasPrefix(contentType, "application/json") {
		return body, fmt.Errorf("failed to read request body: unsupported content type %s", contentType)
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if len(bodyBytes) == 0 {
		return body, errEmptyBody
	}

	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to read request body %s: %w", contentType, err)
	}

	return body, nil
}

// readOrdersQuery - достаёт из query состояние страницы заказов, которым владеет браузер
func readOrdersQuery(r *http.Request) (model.OrdersQuery, error) {
	q := model.OrdersQuery{Selected: r.URL.Query().Get("selected")}

	if raw := r.URL.Query().Get("visible"); raw != "" {
		visible, err := strconv.Atoi(raw)
		if err != nil || visible < 0 {
			return q, fmt.Errorf("invalid visible parameter %q", raw)
		}
		q.Visible = visible
	}

	return q, nil
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
	writeJSON(w, apiErr, apiErr.Code)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeAPIError(w, &model.APIError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
