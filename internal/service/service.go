package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"shopchannel/search/internal/cache"
	"shopchannel/search/internal/client"
	"shopchannel/search/internal/config"
	"shopchannel/search/internal/domain"
	"shopchannel/search/internal/repository"
	"shopchannel/search/internal/search"
)

// Service ties the search backend, warehouse and result-shaping pipeline
// together. It holds no per-request state; everything flows through the
// arguments.
type Service struct {
	backend    client.SearchBackend
	repository repository.ProductRepository
	cache      cache.NameCache
	pipeline   *search.Pipeline
	limits     config.SearchConfig
}

func NewService(
	backend client.SearchBackend,
	repository repository.ProductRepository,
	nameCache cache.NameCache,
	pipeline *search.Pipeline,
	limits config.SearchConfig,
) *Service {
	return &Service{
		backend:    backend,
		repository: repository,
		cache:      nameCache,
		pipeline:   pipeline,
		limits:     limits,
	}
}

// SearchByText runs a text query against the search backend and shapes the
// hits through the pipeline. A purely numeric query is treated as a product
// number and replaced with that product's name before searching.
func (s *Service) SearchByText(ctx context.Context, query string, criteria search.Criteria, page, pageSize int, shape domain.OutputShape) (*search.Result, error) {
	sanitized, err := s.sanitizeQuery(query)
	if err != nil {
		return nil, err
	}

	if isDigitsOnly(sanitized) {
		name, err := s.resolveProductName(ctx, sanitized)
		if err != nil {
			return nil, err
		}
		log.Infof("Resolved numeric query %s to product name %q", sanitized, name)
		sanitized = name
	}

	log.Infof("Searching for %q (page %d, size %d)", sanitized, page, pageSize)

	hits, err := s.backend.Search(ctx, sanitized, s.fetchSize())
	if err != nil {
		return nil, fmt.Errorf("search backend query failed: %w", err)
	}

	return s.pipeline.Run(hits, criteria, page, pageSize, shape)
}

// SearchByID looks up exactly one product by product number in the
// warehouse. domain.ErrProductNotFound is returned when no row matches.
func (s *Service) SearchByID(ctx context.Context, id string) (*domain.ProductRecord, error) {
	sanitized, err := s.sanitizeID(id)
	if err != nil {
		return nil, err
	}

	log.Infof("Searching for product with product_number: %s", sanitized)
	return s.repository.FindByProductNumber(ctx, sanitized)
}

// fetchSize is how many raw hits to pull from the backend in one shot.
// Category and price filtering happen locally, so the fetch has to cover
// several pages worth of survivors.
func (s *Service) fetchSize() int {
	size := s.limits.MaxPageSize * 10
	if size > s.limits.MaxFetchSize {
		size = s.limits.MaxFetchSize
	}
	return size
}

func (s *Service) resolveProductName(ctx context.Context, productNumber string) (string, error) {
	if s.cache != nil {
		name, ok, err := s.cache.GetProductName(ctx, productNumber)
		if err != nil {
			// Cache trouble degrades to a warehouse lookup.
			log.Warnf("Name cache lookup failed for %s: %v", productNumber, err)
		} else if ok {
			return name, nil
		}
	}

	record, err := s.repository.FindByProductNumber(ctx, productNumber)
	if err != nil {
		return "", err
	}
	if record.ProductName == "" {
		return "", domain.ErrProductNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetProductName(ctx, productNumber, record.ProductName); err != nil {
			log.Warnf("Failed to cache product name for %s: %v", productNumber, err)
		}
	}

	return record.ProductName, nil
}
