package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/dochub"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	dochub.ECONFLICT: http.StatusConflict,
	dochub.EINVALID:  http.StatusBadRequest,
	dochub.ENOTFOUND: http.StatusNotFound,
	dochub.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body of an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as a JSON error response. Internal errors are logged and
// their details hidden from the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := dochub.ErrorCode(err), dochub.ErrorMessage(err)
	if code == dochub.EINTERNAL {
		loggerFromContext(r.Context()).Error("http error", "err", err)
	}
	writeJSON(w, r, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		loggerFromContext(r.Context()).Error("failed to encode response", "err", err)
	}
}
