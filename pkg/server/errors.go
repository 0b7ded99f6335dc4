package server

import (
	"encoding/json"
	"errors"
	"net/http"

	herrors "github.com/vango-dev/htmlconv/internal/errors"
)

// errorBody is the JSON shape of an error reply.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// toErrorBody converts err into its reply body. Errors without a code are
// reported as internal errors without their text.
func toErrorBody(err error) errorBody {
	var herr *herrors.Error
	if errors.As(err, &herr) {
		return errorBody{Code: herr.Code, Message: herr.Message, Detail: herr.Detail}
	}
	return errorBody{Message: http.StatusText(http.StatusInternalServerError)}
}

// statusFor maps an error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case "H001", "H002", "H003", "H030", "H031", "H040":
		return http.StatusBadRequest
	case "H021":
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	body := toErrorBody(err)
	writeJSON(w, statusFor(body.Code), errorEnvelope{Error: body})
}
