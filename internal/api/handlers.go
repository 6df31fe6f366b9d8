package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/session"
	"github.com/Ajugbo/aiq-platform/internal/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

type evaluateRequest struct {
	Response any  `json:"response"`
	Ordinal  *int `json:"ordinal"`
}

type submitRequest struct {
	Responses map[string]any `json:"responses"`
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// EvaluateHandler scores a single response. The ordinal defaults to 1.
func EvaluateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if err := decodeBody(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ordinal := 1
		if req.Ordinal != nil {
			ordinal = *req.Ordinal
		}
		b, err := scorer.EvaluateValue(req.Response, ordinal)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, b)
	}
}

// AggregateHandler converts a breakdown into a composite score and level.
func AggregateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var b scorer.Breakdown
		if err := decodeBody(w, r, &b); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, scorer.Aggregate(b))
	}
}

// SubmitHandler scores a full set of responses and stores the result.
func SubmitHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := decodeBody(w, r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		responses, err := session.ParseResponses(req.Responses)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := svc.Complete(r.Context(), responses)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, res)
	}
}

// ResultHandler returns the stored result, or 404 when there is none.
func ResultHandler(s store.ResultStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := s.Get(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if res == nil {
			http.Error(w, "no result recorded", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// VerifyHandler checks a certificate code. The code is normalized first.
func VerifyHandler(v *certificate.Verifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := certificate.Normalize(chi.URLParam(r, "code"))
		out, err := v.Verify(r.Context(), code)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
