package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
	"github.com/KasumiMercury/primind-group-matching/internal/service/match"
)

type MatchService interface {
	FindMatches(ctx context.Context, req match.Request) (*match.Response, error)
	GetSnapshot(ctx context.Context, id string) (*domain.MatchSnapshot, error)
}

type MatchHandler struct {
	matchService   MatchService
	requestTimeout time.Duration
}

func NewMatchHandler(matchService MatchService, requestTimeout time.Duration) *MatchHandler {
	return &MatchHandler{
		matchService:   matchService,
		requestTimeout: requestTimeout,
	}
}

func (h *MatchHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/availability/match", h.HandleFindMatches)
	r.GET("/matches/:id", h.HandleGetMatch)
}

// HandleFindMatches serves
// GET /availability/match?group_ids=a,b&min_per_group=2&count=5&group_min=a:3
func (h *MatchHandler) HandleFindMatches(c *gin.Context) {
	ctx := c.Request.Context()
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	req, err := parseMatchRequest(c)
	if err != nil {
		slog.DebugContext(ctx, "rejected match request",
			slog.String("query", c.Request.URL.RawQuery),
			slog.String("error", err.Error()),
		)
		respondError(c, err)
		return
	}

	resp, err := h.matchService.FindMatches(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MatchHandler) HandleGetMatch(c *gin.Context) {
	snapshot, err := h.matchService.GetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func parseMatchRequest(c *gin.Context) (match.Request, error) {
	var req match.Request

	groupIDs, err := domain.ParseGroupIDs(strings.Join(c.QueryArray("group_ids"), ","))
	if err != nil {
		return req, err
	}
	req.GroupIDs = groupIDs

	if req.MinPerGroup, err = optionalUint(c, "min_per_group"); err != nil {
		return req, err
	}

	// count is the older name of max_results.
	if req.MaxResults, err = optionalUint(c, "max_results"); err != nil {
		return req, err
	}
	if req.MaxResults == nil {
		if req.MaxResults, err = optionalUint(c, "count"); err != nil {
			return req, err
		}
	}

	if req.GroupMinimums, err = parseGroupMinimums(c.QueryArray("group_min")); err != nil {
		return req, err
	}

	return req, nil
}

func optionalUint(c *gin.Context, key string) (*uint, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}

	parsed, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return nil, &domain.ValidationError{
			Field:  key,
			Reason: fmt.Sprintf("%q is not a non-negative integer", raw),
		}
	}

	v := uint(parsed)
	return &v, nil
}

// parseGroupMinimums reads entries of the form <group_id>:<minimum>, either
// repeated or comma separated.
func parseGroupMinimums(values []string) (map[domain.GroupID]uint, error) {
	if len(values) == 0 {
		return nil, nil
	}

	minimums := make(map[domain.GroupID]uint)
	for _, value := range values {
		for _, entry := range strings.Split(value, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}

			rawID, rawMin, ok := strings.Cut(entry, ":")
			if !ok {
				return nil, &domain.ValidationError{
					Field:  "group_min",
					Reason: fmt.Sprintf("%q must have the form <group_id>:<minimum>", entry),
				}
			}

			groupID, err := domain.ParseGroupID(rawID)
			if err != nil {
				return nil, &domain.ValidationError{
					Field:  "group_min",
					Reason: fmt.Sprintf("invalid group id %q", rawID),
				}
			}

			minimum, err := strconv.ParseUint(strings.TrimSpace(rawMin), 10, 32)
			if err != nil {
				return nil, &domain.ValidationError{
					Field:  "group_min",
					Reason: fmt.Sprintf("%q is not a non-negative integer", rawMin),
				}
			}

			minimums[groupID] = uint(minimum)
		}
	}

	return minimums, nil
}
