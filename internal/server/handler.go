package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/Yalort/lootgen/internal/generator"
	"github.com/Yalort/lootgen/internal/loot"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// TagsResponse lists the tags the catalog knows about.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Handler serves the HTTP API on top of a generator.Service.
type Handler struct {
	svc      generator.Service
	validate *validator.Validate
}

// NewHandler creates handlers for svc.
func NewHandler(svc generator.Service) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return &Handler{svc: svc, validate: v}
}

// HandleGenerate runs one generation.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleSimulate runs a Monte Carlo simulation.
func (h *Handler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req generator.SimRequest
	if !h.decode(w, r, &req) {
		return
	}
	rep, err := h.svc.Simulate(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rep)
}

// HandleTags lists known tags.
func (h *Handler) HandleTags(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, TagsResponse{Tags: h.svc.Tags(r.Context())})
}

// HandleCatalog summarizes the served catalog.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Catalog(r.Context()))
}

// HandleReload re-reads the catalog files.
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Reload(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "reload failed: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// HandleHealthz is a liveness check.
func HandleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler should continue.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:  "invalid request",
				Fields: fieldErrors(verrs),
			})
			return false
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "is required"
		case "gt":
			out[fe.Field()] = "must be greater than " + fe.Param()
		case "notblank":
			out[fe.Field()] = "must not be blank"
		case "gte":
			out[fe.Field()] = "must be at least " + fe.Param()
		default:
			out[fe.Field()] = fmt.Sprintf("failed %s", fe.Tag())
		}
	}
	return out
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, loot.ErrInvalidArgument):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}
