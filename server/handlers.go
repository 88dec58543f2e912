package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	optisearch "github.com/Sanjay1766/OptiSearch-AI"
	"github.com/Sanjay1766/OptiSearch-AI/core"
	"github.com/Sanjay1766/OptiSearch-AI/search"
)

type searchRequest struct {
	Query      string `json:"query"`
	Location   string `json:"location"`
	SearchType string `json:"search_type"`
	TopK       int    `json:"top_k"`
}

type locationRequest struct {
	Location string  `json:"location"`
	RadiusKm float64 `json:"radius_km"`
	TopK     int     `json:"top_k"`
}

type skillsRequest struct {
	Skills []string `json:"skills"`
	TopK   int      `json:"top_k"`
}

type categoryRequest struct {
	Category string `json:"category"`
	Query    string `json:"query"`
	TopK     int    `json:"top_k"`
}

type internshipPayload struct {
	ID             int64   `json:"id"`
	Title          string  `json:"title"`
	Company        string  `json:"company"`
	Description    string  `json:"description"`
	SkillsRequired string  `json:"skills_required"`
	Category       string  `json:"category"`
	Location       string  `json:"location"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Stipend        string  `json:"stipend"`
	DurationMonths int     `json:"duration_months"`
}

func makeInternshipPayload(i *core.Internship) internshipPayload {
	return internshipPayload{
		ID:             int64(i.Id),
		Title:          i.Title,
		Company:        i.Company,
		Description:    i.Description,
		SkillsRequired: i.SkillsRequired,
		Category:       i.Category,
		Location:       i.Location,
		Latitude:       i.Latitude,
		Longitude:      i.Longitude,
		Stipend:        i.Stipend,
		DurationMonths: i.DurationMonths,
	}
}

type resultPayload struct {
	internshipPayload
	RelevanceScore float64 `json:"relevance_score"`
}

func makeResultPayloads(results []core.SearchResult) []resultPayload {
	out := make([]resultPayload, len(results))
	for i, r := range results {
		out[i] = resultPayload{
			internshipPayload: makeInternshipPayload(r.Internship),
			RelevanceScore:    r.Score,
		}
	}
	return out
}

type locationHitPayload struct {
	internshipPayload
	DistanceKm float64 `json:"distance_km,omitempty"`
	Nearby     bool    `json:"nearby,omitempty"`
}

type searchResponse struct {
	Success      bool            `json:"success"`
	TotalResults int             `json:"total_results"`
	Results      []resultPayload `json:"results"`
}

type locationSearchResponse struct {
	Success      bool                 `json:"success"`
	Location     string               `json:"location"`
	TotalResults int                  `json:"total_results"`
	Results      []locationHitPayload `json:"results"`
}

type skillsSearchResponse struct {
	Success      bool            `json:"success"`
	Skills       []string        `json:"skills"`
	TotalResults int             `json:"total_results"`
	Results      []resultPayload `json:"results"`
}

type categorySearchResponse struct {
	Success      bool            `json:"success"`
	Category     string          `json:"category"`
	TotalResults int             `json:"total_results"`
	Results      []resultPayload `json:"results"`
}

type locationsResponse struct {
	Success   bool     `json:"success"`
	Locations []string `json:"locations"`
}

type categoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

type healthResponse struct {
	Status           string `json:"status"`
	TotalInternships int    `json:"total_internships"`
	ModelReady       bool   `json:"model_ready"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		s.writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	results, err := s.system.Search(r.Context(), optisearch.SearchQuery{
		Query:    req.Query,
		Location: req.Location,
		Type:     optisearch.SearchType(req.SearchType),
		TopK:     req.TopK,
	})
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, searchResponse{
		Success:      true,
		TotalResults: len(results),
		Results:      makeResultPayloads(results),
	})
}

func (s *Server) handleSearchByLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Location) == "" {
		s.writeError(w, http.StatusBadRequest, "location is required")
		return
	}

	hits, err := s.system.SearchByLocation(r.Context(), req.Location, req.RadiusKm, req.TopK)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	payloads := make([]locationHitPayload, len(hits))
	for i, h := range hits {
		payloads[i] = locationHitPayload{
			internshipPayload: makeInternshipPayload(h.Internship),
			DistanceKm:        h.DistanceKm,
			Nearby:            h.Nearby,
		}
	}

	s.writeJSON(w, http.StatusOK, locationSearchResponse{
		Success:      true,
		Location:     req.Location,
		TotalResults: len(hits),
		Results:      payloads,
	})
}

func (s *Server) handleSearchBySkills(w http.ResponseWriter, r *http.Request) {
	var req skillsRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Skills) == 0 {
		s.writeError(w, http.StatusBadRequest, "skills list is required")
		return
	}

	results, err := s.system.SearchBySkills(r.Context(), req.Skills, req.TopK)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, skillsSearchResponse{
		Success:      true,
		Skills:       req.Skills,
		TotalResults: len(results),
		Results:      makeResultPayloads(results),
	})
}

func (s *Server) handleSearchByCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		s.writeError(w, http.StatusBadRequest, "category is required")
		return
	}

	results, err := s.system.SearchByCategory(r.Context(), req.Category, req.Query, req.TopK)
	if err != nil {
		s.writeSearchError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, categorySearchResponse{
		Success:      true,
		Category:     req.Category,
		TotalResults: len(results),
		Results:      makeResultPayloads(results),
	})
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	locations := s.system.Locations()
	if locations == nil {
		locations = []string{}
	}
	s.writeJSON(w, http.StatusOK, locationsResponse{Success: true, Locations: locations})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	categories := s.system.Categories()
	if categories == nil {
		categories = []string{}
	}
	s.writeJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: categories})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := s.system.Health()
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:           h.Status,
		TotalInternships: h.TotalRecords,
		ModelReady:       h.ModelReady,
	})
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writing response failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

// writeSearchError maps a search failure to a response status. A missing
// model is a temporary condition and answers 503; anything else is a 500
// with the detail kept in the log.
func (s *Server) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, search.ErrModelNotReady) {
		s.writeError(w, http.StatusServiceUnavailable, "search model is not ready")
		return
	}
	s.logger.Error("search request failed", "path", r.URL.Path, "err", err)
	s.writeError(w, http.StatusInternalServerError, "internal search error")
}
