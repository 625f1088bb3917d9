package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := opts.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := readBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	in, err := s.runner.ParseBytes(ctx, "request "+middleware.GetReqID(ctx), body, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	art, err := s.runner.Render(ctx, in, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", pipeline.ContentType(art.Format))
	if pipeline.IsImage(art.Format) {
		w.Header().Set("X-Cache", cacheStatus(art.Cached))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(art.Data)
}

func optionsFromQuery(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{Format: q.Get("format")}
	if opts.Format == "" {
		opts.Format = pipeline.FormatSVG
	}
	if mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err == nil && mt == "application/json" {
		opts.JSONInput = true
	}
	if v := q.Get("distinct"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "distinct: %q is not a boolean", v)
		}
		opts.Distinct = b
	}
	if v := q.Get("tab_width"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "tab_width: %q is not an integer", v)
		}
		opts.TabWidth = n
	}
	if v := q.Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale: %q is not a number", v)
		}
		opts.Scale = f
	}
	return opts, nil
}

var errBodyTooLarge = errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", MaxBodyBytes)

func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return data, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "id", middleware.GetReqID(r.Context()), "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:  code,
		Error: errors.UserMessage(err),
	})
}

func statusFor(err error) int {
	if err == errBodyTooLarge {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeEmptyOrganization:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func cacheStatus(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
