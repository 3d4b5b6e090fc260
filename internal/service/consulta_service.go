package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"tabela-fipe-cli/internal/matching"
	"tabela-fipe-cli/internal/model"
	"tabela-fipe-cli/internal/parser"
)

// Fetcher retrieves a response body by URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// ConsultaService runs each stage of a FIPE lookup. Every stage receives the
// URL built by the previous one and returns the data it decoded.
type ConsultaService struct {
	fetcher Fetcher
	decoder *parser.Decoder
	baseURL string
	logger  *slog.Logger
}

func NewConsultaService(fetcher Fetcher, decoder *parser.Decoder, baseURL string, logger *slog.Logger) *ConsultaService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsultaService{
		fetcher: fetcher,
		decoder: decoder,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// CategoryURL monta a URL de marcas da categoria
func (s *ConsultaService) CategoryURL(c model.Category) string {
	return s.baseURL + "/" + c.Path()
}

// ModelsURL appends the brand code to a brands URL
func ModelsURL(brandsURL, brandCode string) string {
	return brandsURL + "/" + brandCode + "/modelos"
}

// YearsURL appends the model code to a models URL
func YearsURL(modelsURL, modelCode string) string {
	return modelsURL + "/" + modelCode + "/anos"
}

// Brands lista as marcas da categoria ordenadas por codigo
func (s *ConsultaService) Brands(ctx context.Context, url string) ([]model.Entity, error) {
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("buscar marcas: %w", err)
	}

	brands, err := parser.DecodeList[model.Entity](s.decoder, body)
	if err != nil {
		return nil, fmt.Errorf("buscar marcas: %w", err)
	}

	SortByCode(brands)
	s.logger.Debug("marcas carregadas", "total", len(brands))
	return brands, nil
}

// Models lista os modelos da marca na ordem devolvida pela API
func (s *ConsultaService) Models(ctx context.Context, url string) (*model.ModelList, error) {
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("buscar modelos: %w", err)
	}

	list, err := parser.DecodeOne[model.ModelList](s.decoder, body)
	if err != nil {
		return nil, fmt.Errorf("buscar modelos: %w", err)
	}

	s.logger.Debug("modelos carregados", "total", len(list.Models))
	return &list, nil
}

// Years lista os anos disponiveis na ordem devolvida pela API
func (s *ConsultaService) Years(ctx context.Context, url string) ([]model.Entity, error) {
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("buscar anos: %w", err)
	}

	years, err := parser.DecodeList[model.Entity](s.decoder, body)
	if err != nil {
		return nil, fmt.Errorf("buscar anos: %w", err)
	}

	s.logger.Debug("anos carregados", "total", len(years))
	return years, nil
}

// Vehicles fetches the price detail of every year, one request at a time.
// Any failure discards the details fetched so far.
func (s *ConsultaService) Vehicles(ctx context.Context, yearsURL string, years []model.Entity) ([]model.Vehicle, error) {
	vehicles := make([]model.Vehicle, 0, len(years))

	for _, year := range years {
		url := yearsURL + "/" + string(year.Code)

		body, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("buscar veiculo do ano %s: %w", year.Code, err)
		}

		vehicle, err := parser.DecodeOne[model.Vehicle](s.decoder, body)
		if err != nil {
			return nil, fmt.Errorf("buscar veiculo do ano %s: %w", year.Code, err)
		}

		vehicles = append(vehicles, vehicle)
	}

	return vehicles, nil
}

// SortByCode orders entities by code as strings, so "10" sorts before "2"
func SortByCode(entities []model.Entity) {
	slices.SortStableFunc(entities, func(a, b model.Entity) int {
		return cmp.Compare(a.Code, b.Code)
	})
}

// SortedByCode returns a sorted copy, leaving entities untouched
func SortedByCode(entities []model.Entity) []model.Entity {
	sorted := slices.Clone(entities)
	SortByCode(sorted)
	return sorted
}

// FilterByName returns the entities whose name contains query, ignoring case
func FilterByName(entities []model.Entity, query string) []model.Entity {
	var filtered []model.Entity
	for _, e := range entities {
		if matching.ContainsFold(e.Name, query) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
