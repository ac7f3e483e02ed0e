package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody is the JSON error payload rendered to REST clients.
type errorBody struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

// WriteHTTP renders an error as a JSON response with the status mapped from
// its code. Internal causes are logged, not leaked to the client.
func WriteHTTP(w http.ResponseWriter, err error) {
	code := GetCode(err)
	if code == CodeInternal {
		slog.Error("internal error", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code.HTTPStatus())

	body := errorBody{
		Code:    code,
		Message: GetMessage(err),
	}
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		slog.Error("failed to encode error response", "error", encodeErr)
	}
}
