package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	herrors "github.com/vango-dev/htmlconv/internal/errors"
	"github.com/vango-dev/htmlconv/pkg/service"
)

// handleConvert serves POST /convert.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)

	req, err := s.decodeRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	resp, err := s.converter.Convert(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeRequest reads a conversion request. JSON bodies are decoded over the
// configured defaults. HTML bodies are the markup itself and take their
// options from the query string.
func (s *Server) decodeRequest(r *http.Request) (service.Request, error) {
	req := s.config.Defaults

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "text/html", "text/plain":
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return req, bodyError(err)
		}
		req.Markup = string(body)
		if err := applyQuery(&req, r); err != nil {
			return req, err
		}
		return req, nil

	case "", "application/json":
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return req, bodyError(err)
		}
		return req, nil

	default:
		return req, herrors.New("H001").
			WithDetailf("unsupported content type %q", mediaType).
			WithSuggestion("Send application/json or text/html")
	}
}

// applyQuery sets request options from query parameters.
func applyQuery(req *service.Request, r *http.Request) error {
	q := r.URL.Query()
	if v := q.Get("format"); v != "" {
		req.Format = v
	}
	if v := q.Get("library"); v != "" {
		req.Library = v
	}
	for name, dst := range map[string]*bool{
		"trim":    &req.Trim,
		"xmlMode": &req.XMLMode,
		"pretty":  &req.Pretty,
		"minify":  &req.Minify,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return herrors.New("H001").WithDetailf("query parameter %s=%q is not a boolean", name, v)
		}
		*dst = b
	}
	return nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return herrors.New("H021").WithDetailf("request body exceeds %d bytes", maxErr.Limit)
	}
	return herrors.New("H001").WithDetail("request body could not be decoded").Wrap(err)
}
