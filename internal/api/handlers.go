package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gamefeed/internal/aggregator"
	"gamefeed/internal/feed"
	"gamefeed/internal/paging"

	"github.com/labstack/echo/v4"
)

type listResponse struct {
	Success    bool         `json:"success"`
	Data       []feed.Item  `json:"data"`
	Message    string       `json:"message,omitempty"`
	Pagination *paging.Meta `json:"pagination,omitempty"`
}

type itemResponse struct {
	Success bool      `json:"success"`
	Data    feed.Item `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// handleCollection serves the paginated, optionally filtered working set of
// a source. Review-bearing sources arrive pre-sorted by score from the
// aggregator. A filter that matches nothing is still a success.
func (s *Server) handleCollection(c echo.Context) error {
	src, ok := s.cfg.LookupSource(c.Param("source"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown source"})
	}

	page := queryInt(c, "page", paging.DefaultPage)
	limit := queryInt(c, "limit", paging.DefaultLimit)
	query := c.QueryParam("q")

	items, err := s.agg.Collection(c.Request().Context(), src)
	if err != nil {
		return s.upstreamError(c, src.Key, err)
	}

	filtered := paging.Filter(items, query)
	if len(filtered) == 0 {
		message := "No items available at this time."
		if strings.TrimSpace(query) != "" {
			message = "No items match the given filter."
		}
		return c.JSON(http.StatusOK, listResponse{
			Success:    true,
			Data:       []feed.Item{},
			Message:    message,
			Pagination: &paging.Meta{Current: page, Total: 0, HasMore: false},
		})
	}

	pageItems, meta := paging.Paginate(filtered, page, limit)
	return c.JSON(http.StatusOK, listResponse{
		Success:    true,
		Data:       pageItems,
		Pagination: &meta,
	})
}

// handleSearch requires a non-empty q and returns all matches, unpaginated.
func (s *Server) handleSearch(c echo.Context) error {
	src, ok := s.cfg.LookupSource(c.Param("source"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown source"})
	}

	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "query parameter q is required"})
	}

	items, err := s.agg.Collection(c.Request().Context(), src)
	if err != nil {
		return s.upstreamError(c, src.Key, err)
	}

	results := paging.Filter(items, query)
	resp := listResponse{Success: true, Data: results}
	if len(results) == 0 {
		resp.Data = []feed.Item{}
		resp.Message = "No items match the given filter."
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleItem(c echo.Context) error {
	src, ok := s.cfg.LookupSource(c.Param("source"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "unknown source"})
	}

	item, err := s.agg.ItemByLink(c.Request().Context(), src, c.Param("id"))
	if errors.Is(err, aggregator.ErrItemNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "item not found"})
	}
	if err != nil {
		return s.upstreamError(c, src.Key, err)
	}
	return c.JSON(http.StatusOK, itemResponse{Success: true, Data: item})
}

// upstreamError hides the fetch failure behind a generic message; the cause
// is logged with the source for diagnosis.
func (s *Server) upstreamError(c echo.Context, source string, err error) error {
	s.logger.Error("feed fetch failed", "source", source, "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch feed"})
}

func queryInt(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
