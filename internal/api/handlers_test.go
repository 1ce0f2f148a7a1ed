package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopchannel/search/internal/config"
	"shopchannel/search/internal/domain"
	"shopchannel/search/internal/search"
)

type stubService struct {
	result     *search.Result
	record     *domain.ProductRecord
	err        error
	lastQuery  string
	lastShape  domain.OutputShape
	lastPage   int
	lastSize   int
	lastFilter search.Criteria
}

func (s *stubService) SearchByText(ctx context.Context, query string, criteria search.Criteria, page, pageSize int, shape domain.OutputShape) (*search.Result, error) {
	s.lastQuery = query
	s.lastFilter = criteria
	s.lastPage = page
	s.lastSize = pageSize
	s.lastShape = shape
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubService) SearchByID(ctx context.Context, id string) (*domain.ProductRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{
			APIKey:          "test-key",
			CORSAllowOrigin: "*",
		},
		Search: config.SearchConfig{
			DefaultPageSize: 10,
			MaxPageSize:     50,
		},
	}
}

func setupTestServer(svc SearchService) *http.ServeMux {
	server := NewServer(svc, testConfig())
	mux := http.NewServeMux()
	server.RegisterRoutes(mux)
	return mux
}

func doRequest(mux *http.ServeMux, method, target, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	mux := setupTestServer(&stubService{})

	rec := doRequest(mux, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "ok", health.Message)
	assert.Equal(t, "healthy", health.Status)
}

func TestAPIKeyEnforcement(t *testing.T) {
	mux := setupTestServer(&stubService{})

	t.Run("missing key is unauthorized", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/api/search-by-text?query=shoes", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/api/search-by-text?query=shoes", "wrong-key")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandleSearchByText(t *testing.T) {
	stub := &stubService{result: &search.Result{
		Shape: domain.ShapeGeneral,
		Records: []domain.ProductRecord{
			{ID: "A", RecordID: "A", ProductName: "Shoes", RegularPrice: "3990"},
		},
		TotalResults: 1,
		PageNumber:   1,
		PageSize:     10,
		TotalPages:   1,
	}}
	mux := setupTestServer(stub)

	t.Run("returns general shape", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/api/search-by-text?query=shoes&cat=Women&lo_price=1000&hi_price=5000&page=1&page_size=10", "test-key")
		require.Equal(t, http.StatusOK, rec.Code)

		var response SearchResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		require.Len(t, response.Results, 1)
		assert.Equal(t, "shoes", response.Query)
		assert.Equal(t, 1, response.TotalResults)
		assert.Equal(t, 1, response.TotalPages)

		assert.Equal(t, domain.ShapeGeneral, stub.lastShape)
		assert.Equal(t, "Women", stub.lastFilter.Category)
		require.NotNil(t, stub.lastFilter.LoPrice)
		assert.Equal(t, 1000.0, *stub.lastFilter.LoPrice)
		require.NotNil(t, stub.lastFilter.HiPrice)
		assert.Equal(t, 5000.0, *stub.lastFilter.HiPrice)
	})

	t.Run("defaults page and page size", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/api/search-by-text?query=shoes", "test-key")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, stub.lastPage)
		assert.Equal(t, 10, stub.lastSize)
	})

	t.Run("missing query rejected", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/api/search-by-text", "test-key")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid pagination rejected without correction", func(t *testing.T) {
		for _, target := range []string{
			"/api/search-by-text?query=shoes&page=0",
			"/api/search-by-text?query=shoes&page=abc",
			"/api/search-by-text?query=shoes&page_size=0",
			"/api/search-by-text?query=shoes&page_size=51",
		} {
			rec := doRequest(mux, http.MethodGet, target, "test-key")
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
	})

	t.Run("negative price bound rejected", func(t *testing.T) {
		rec := doRequest(mux, http.MethodGet, "/api/search-by-text?query=shoes&lo_price=-5", "test-key")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleSearchByTextStorefront(t *testing.T) {
	stub := &stubService{result: &search.Result{
		Shape: domain.ShapeStorefront,
		Suggestions: []search.StorefrontSuggestion{
			{Type: "Product", ID: 121552, Value: "Shoes"},
		},
		TotalResults: 1,
		PageNumber:   1,
		PageSize:     10,
		TotalPages:   1,
	}}
	mux := setupTestServer(stub)

	rec := doRequest(mux, http.MethodGet, "/api/wp/search-by-text?query=shoes", "test-key")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ShapeStorefront, stub.lastShape)

	var payload map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Contains(t, payload, "suggestions")
	assert.NotContains(t, payload, "results")
}

func TestHandleSearchByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		stub := &stubService{record: &domain.ProductRecord{
			RecordID:      "32987",
			ProductNumber: "121552*006",
			ProductName:   "Slip-on leather shoes",
		}}
		mux := setupTestServer(stub)

		rec := doRequest(mux, http.MethodGet, "/api/search-by-id?id=121552*006", "test-key")
		require.Equal(t, http.StatusOK, rec.Code)

		var record domain.ProductRecord
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&record))
		assert.Equal(t, "32987", record.RecordID)
	})

	t.Run("not found", func(t *testing.T) {
		mux := setupTestServer(&stubService{err: domain.ErrProductNotFound})

		rec := doRequest(mux, http.MethodGet, "/api/search-by-id?id=NOPE", "test-key")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing id rejected", func(t *testing.T) {
		mux := setupTestServer(&stubService{})

		rec := doRequest(mux, http.MethodGet, "/api/search-by-id", "test-key")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchErrorMapping(t *testing.T) {
	t.Run("numeric query with no product maps to 404", func(t *testing.T) {
		mux := setupTestServer(&stubService{err: domain.ErrProductNotFound})

		rec := doRequest(mux, http.MethodGet, "/api/search-by-text?query=99999", "test-key")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("pipeline input errors map to 400", func(t *testing.T) {
		mux := setupTestServer(&stubService{err: search.ErrInvalidPageSize})

		rec := doRequest(mux, http.MethodGet, "/api/search-by-text?query=shoes", "test-key")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
