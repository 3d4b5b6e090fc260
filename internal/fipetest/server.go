// Package fipetest serves an in-memory copy of the FIPE API over httptest.
package fipetest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tabela-fipe-cli/internal/model"
)

// Catalog holds the data served by the fake API
type Catalog struct {
	// Brands by category segment ("carros", "motos", "caminhoes")
	Brands map[string][]model.Entity
	// Models by brand code
	Models map[string][]model.Entity
	// Years by model code
	Years map[string][]model.Entity
	// Vehicles by model code, then year code
	Vehicles map[string]map[string]model.Vehicle
}

// wireModel mimics the models endpoint, which sends codigo as a number
type wireModel struct {
	Code json.RawMessage `json:"codigo"`
	Name string          `json:"nome"`
}

type wireVehicle struct {
	TipoVeiculo int `json:"TipoVeiculo"`
	model.Vehicle
	MesReferencia    string `json:"MesReferencia"`
	SiglaCombustivel string `json:"SiglaCombustivel"`
}

// Server is a running fake FIPE API
type Server struct {
	// BaseURL is the equivalent of https://parallelum.com.br/fipe/api/v1
	BaseURL string

	srv     *httptest.Server
	catalog Catalog

	mu       sync.Mutex
	requests []string
}

// NewServer starts a fake API serving catalog
func NewServer(catalog Catalog) *Server {
	s := &Server{catalog: catalog}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)

	r.Get("/fipe/api/v1/{tipo}/marcas", s.listBrands)
	r.Get("/fipe/api/v1/{tipo}/marcas/{marca}/modelos", s.listModels)
	r.Get("/fipe/api/v1/{tipo}/marcas/{marca}/modelos/{modelo}/anos", s.listYears)
	r.Get("/fipe/api/v1/{tipo}/marcas/{marca}/modelos/{modelo}/anos/{ano}", s.getVehicle)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		notFound(w)
	})

	s.srv = httptest.NewServer(r)
	s.BaseURL = s.srv.URL + "/fipe/api/v1"
	return s
}

// Close shuts the server down
func (s *Server) Close() {
	s.srv.Close()
}

// Requests returns the request paths received so far, in order
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.Path)
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, ok := s.catalog.Brands[chi.URLParam(r, "tipo")]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (s *Server) listModels(w http.ResponseWriter, r *http.Request) {
	models, ok := s.catalog.Models[chi.URLParam(r, "marca")]
	if !ok {
		notFound(w)
		return
	}

	wire := make([]wireModel, 0, len(models))
	for _, m := range models {
		wire = append(wire, wireModel{Code: numericCode(m.Code), Name: m.Name})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"modelos": wire,
		"anos":    []model.Entity{},
	})
}

func (s *Server) listYears(w http.ResponseWriter, r *http.Request) {
	years, ok := s.catalog.Years[chi.URLParam(r, "modelo")]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, years)
}

func (s *Server) getVehicle(w http.ResponseWriter, r *http.Request) {
	vehicle, ok := s.catalog.Vehicles[chi.URLParam(r, "modelo")][chi.URLParam(r, "ano")]
	if !ok {
		// unknown years get a plain text page, not JSON
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, wireVehicle{
		TipoVeiculo:      1,
		Vehicle:          vehicle,
		MesReferencia:    "outubro de 2026",
		SiglaCombustivel: "G",
	})
}

// numericCode renders a code as a JSON number when it is one
func numericCode(c model.Code) json.RawMessage {
	for _, r := range c {
		if r < '0' || r > '9' {
			b, _ := json.Marshal(string(c))
			return b
		}
	}
	if c == "" {
		return json.RawMessage(`null`)
	}
	return json.RawMessage(c)
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("fipetest: falha ao escrever resposta", "status", status, "error", err)
	}
}
