package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	optisearch "github.com/Sanjay1766/OptiSearch-AI"
	"github.com/Sanjay1766/OptiSearch-AI/core"
	"github.com/Sanjay1766/OptiSearch-AI/corpus"
)

func testRecords() []core.Internship {
	return []core.Internship{
		{
			Id: 1, Title: "Python Developer", Company: "TechCorp",
			Description:    "Work on backend services with Python and Flask",
			SkillsRequired: "Python, Flask", Category: "Technology",
			Location: "Mumbai", Latitude: 19.0760, Longitude: 72.8777,
			Stipend: "INR 15000/month", DurationMonths: 6,
		},
		{
			Id: 2, Title: "Java Developer", Company: "CodeWorks",
			Description:    "Build enterprise applications with Java and Spring",
			SkillsRequired: "Java, Spring", Category: "Technology",
			Location: "Delhi", Latitude: 28.7041, Longitude: 77.1025,
			Stipend: "INR 18000/month", DurationMonths: 6,
		},
	}
}

func newTestServer(t *testing.T, cfg Config, bootstrap bool) *Server {
	t.Helper()

	c, err := corpus.New(testRecords())
	require.NoError(t, err)
	system, err := optisearch.NewSystem(c)
	require.NoError(t, err)
	if bootstrap {
		require.NoError(t, system.Bootstrap(context.Background()))
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	srv, err := New(system, cfg)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestNew_RequiresSystem(t *testing.T) {
	_, err := New(nil, Config{})
	assert.ErrorIs(t, err, ErrSystemRequired)
}

func TestServer_Search(t *testing.T) {
	srv := newTestServer(t, Config{}, true)

	rec := doJSON(t, srv, http.MethodPost, "/api/search", map[string]any{"query": "Python"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody[searchResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.TotalResults)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, int64(1), resp.Results[0].ID)
	assert.Equal(t, "Python Developer", resp.Results[0].Title)
	assert.Equal(t, "TechCorp", resp.Results[0].Company)
	assert.Greater(t, resp.Results[0].RelevanceScore, resp.Results[1].RelevanceScore)
}

func TestServer_Search_Validation(t *testing.T) {
	srv := newTestServer(t, Config{}, true)

	t.Run("missing query", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search", map[string]any{"location": "Mumbai"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeBody[errorResponse](t, rec)
		assert.Equal(t, "query is required", resp.Error)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Search_ModelNotReady(t *testing.T) {
	srv := newTestServer(t, Config{}, false)

	rec := doJSON(t, srv, http.MethodPost, "/api/search", map[string]any{"query": "python"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	resp := decodeBody[errorResponse](t, rec)
	assert.Contains(t, resp.Error, "not ready")
}

func TestServer_Search_LocationNarrowing(t *testing.T) {
	srv := newTestServer(t, Config{}, true)

	rec := doJSON(t, srv, http.MethodPost, "/api/search",
		map[string]any{"query": "developer", "location": "Mumbai"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[searchResponse](t, rec)
	assert.Equal(t, 1, resp.TotalResults)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, int64(1), resp.Results[0].ID)
}

func TestServer_SearchByLocation(t *testing.T) {
	srv := newTestServer(t, Config{}, true)

	t.Run("exact match", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-location",
			map[string]any{"location": "Mumbai"})
		require.Equal(t, http.StatusOK, rec.Code)

		// Exact hits carry no distance field.
		assert.NotContains(t, rec.Body.String(), "distance_km")

		resp := decodeBody[locationSearchResponse](t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, "Mumbai", resp.Location)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, int64(1), resp.Results[0].ID)
		assert.False(t, resp.Results[0].Nearby)
	})

	t.Run("nearby backfill", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-location",
			map[string]any{"location": "Gurgaon"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[locationSearchResponse](t, rec)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, int64(2), resp.Results[0].ID)
		assert.True(t, resp.Results[0].Nearby)
		assert.Greater(t, resp.Results[0].DistanceKm, 20.0)
		assert.Less(t, resp.Results[0].DistanceKm, 40.0)
	})

	t.Run("unknown place", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-location",
			map[string]any{"location": "Atlantis"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[locationSearchResponse](t, rec)
		assert.True(t, resp.Success)
		assert.Zero(t, resp.TotalResults)
		assert.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
	})

	t.Run("missing location", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-location", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeBody[errorResponse](t, rec)
		assert.Equal(t, "location is required", resp.Error)
	})
}

func TestServer_SearchBySkills(t *testing.T) {
	srv := newTestServer(t, Config{}, true)

	t.Run("matching skills", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-skills",
			map[string]any{"skills": []string{"Python", "Flask"}})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[skillsSearchResponse](t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, []string{"Python", "Flask"}, resp.Skills)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, int64(1), resp.Results[0].ID)
	})

	t.Run("missing skills", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-skills", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeBody[errorResponse](t, rec)
		assert.Equal(t, "skills list is required", resp.Error)
	})
}

func TestServer_SearchByCategory(t *testing.T) {
	srv := newTestServer(t, Config{}, true)

	t.Run("browse category", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-category",
			map[string]any{"category": "Technology"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[categorySearchResponse](t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, "Technology", resp.Category)
		require.Len(t, resp.Results, 2)
		assert.Equal(t, int64(1), resp.Results[0].ID)
		assert.Equal(t, int64(2), resp.Results[1].ID)
		assert.Zero(t, resp.Results[0].RelevanceScore)
	})

	t.Run("ranked within category", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-category",
			map[string]any{"category": "Technology", "query": "python"})
		require.Equal(t, http.StatusOK, rec.Code)

		resp := decodeBody[categorySearchResponse](t, rec)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, int64(1), resp.Results[0].ID)
		assert.Greater(t, resp.Results[0].RelevanceScore, 0.0)
	})

	t.Run("missing category", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/search-by-category", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeBody[errorResponse](t, rec)
		assert.Equal(t, "category is required", resp.Error)
	})
}

func TestServer_Listings(t *testing.T) {
	srv := newTestServer(t, Config{}, true)

	rec := doJSON(t, srv, http.MethodGet, "/api/locations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	locs := decodeBody[locationsResponse](t, rec)
	assert.True(t, locs.Success)
	assert.Equal(t, []string{"Mumbai", "Delhi"}, locs.Locations)

	rec = doJSON(t, srv, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cats := decodeBody[categoriesResponse](t, rec)
	assert.True(t, cats.Success)
	assert.Equal(t, []string{"Technology"}, cats.Categories)
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, Config{}, true)

	rec := doJSON(t, srv, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[healthResponse](t, rec)
	assert.Equal(t, optisearch.HealthStatusOK, resp.Status)
	assert.Equal(t, 2, resp.TotalInternships)
	assert.True(t, resp.ModelReady)
}

func TestServer_CORS(t *testing.T) {
	t.Run("open by default", func(t *testing.T) {
		srv := newTestServer(t, Config{}, true)

		req := httptest.NewRequest(http.MethodOptions, "/api/search", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricted origins", func(t *testing.T) {
		srv := newTestServer(t, Config{AllowedOrigins: []string{"https://app.example.com"}}, true)

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec = httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
