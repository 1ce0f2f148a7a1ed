package client

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"shopchannel/search/internal/config"
	"shopchannel/search/internal/domain"
)

// SearchBackend queries the managed search engine for ranked product hits.
// Ranking, relevance and spell correction are the engine's concern; the
// client only materializes the ordered hit list.
type SearchBackend interface {
	Search(ctx context.Context, query string, pageSize int) ([]domain.ProductRecord, error)
}

type searchBackend struct {
	rl         ratelimit.Limiter
	config     config.BackendConfig
	httpClient *resty.Client
}

func NewSearchBackend(cfg config.BackendConfig) SearchBackend {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("Content-Type", "application/json")

	if cfg.AuthToken != "" {
		client.SetAuthToken(cfg.AuthToken)
	}

	return &searchBackend{
		rl:         ratelimit.New(cfg.MaxRequestsPerSecond),
		config:     cfg,
		httpClient: client,
	}
}

type searchSpec struct {
	Condition string `json:"condition,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

type searchRequest struct {
	Query               string     `json:"query"`
	PageSize            int        `json:"pageSize"`
	QueryExpansionSpec  searchSpec `json:"queryExpansionSpec"`
	SpellCorrectionSpec searchSpec `json:"spellCorrectionSpec"`
	LanguageCode        string     `json:"languageCode"`
}

type searchHit struct {
	Document struct {
		ID         string         `json:"id"`
		StructData map[string]any `json:"structData"`
	} `json:"document"`
}

type searchResponse struct {
	Results []searchHit `json:"results"`
	// TotalSize is the engine's estimate. It is a hint only: totals exposed
	// to callers are recomputed after local filtering.
	TotalSize int `json:"totalSize"`
}

func (c *searchBackend) Search(ctx context.Context, query string, pageSize int) ([]domain.ProductRecord, error) {
	c.rl.Take()

	request := searchRequest{
		Query:               query,
		PageSize:            pageSize,
		QueryExpansionSpec:  searchSpec{Condition: "AUTO"},
		SpellCorrectionSpec: searchSpec{Mode: "AUTO"},
		LanguageCode:        c.config.LanguageCode,
	}

	var response searchResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&response).
		Post(fmt.Sprintf("/v1/%s:search", c.config.ServingConfig))

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("search request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to query search backend: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("search backend HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	records := decodeHits(response.Results)
	log.Debugf("Search backend returned %d raw hits for query %q (estimate %d)",
		len(records), query, response.TotalSize)

	return records, nil
}

// decodeHits converts loose hit payloads into product records, preserving
// the engine's ranking order. A hit carrying no identifier at all is
// malformed upstream data: it is dropped with a warning and the rest of the
// hit list continues.
func decodeHits(hits []searchHit) []domain.ProductRecord {
	records := make([]domain.ProductRecord, 0, len(hits))

	for _, hit := range hits {
		record := domain.ProductFromPayload(hit.Document.ID, hit.Document.StructData)
		if record.ID == "" && record.RecordID == "" {
			log.Warnf("Dropping search hit without identifier: %v", hit.Document.StructData)
			continue
		}
		records = append(records, record)
	}

	return records
}
