package handlers

import (
	"net/http"

	"github.com/AvishekRimal/student-planner/internal/auth"
	dom "github.com/AvishekRimal/student-planner/internal/domain"
	"github.com/AvishekRimal/student-planner/internal/dto"
	"github.com/AvishekRimal/student-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Get godoc
// @Summary      Productivity statistics for the logged-in user
// @Description  Category breakdown (all-time), created/completed per ISO week (last 28 days) and daily completion trend (last 30 days).
// @Tags         stats
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.StatsResponse
// @Failure      500  {object}  map[string]string
// @Router       /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, statsToResponse(stats))
}

func statsToResponse(s dom.Stats) dto.StatsResponse {
	out := dto.StatsResponse{
		TasksByCategory:   make([]dto.CategoryCount, len(s.TasksByCategory)),
		TasksByWeek:       make([]dto.WeekCount, len(s.TasksByWeek)),
		ProductivityTrend: make([]dto.TrendPoint, len(s.ProductivityTrend)),
	}
	for i, cc := range s.TasksByCategory {
		out.TasksByCategory[i] = dto.CategoryCount(cc)
	}
	for i, wc := range s.TasksByWeek {
		out.TasksByWeek[i] = dto.WeekCount(wc)
	}
	for i, tp := range s.ProductivityTrend {
		out.ProductivityTrend[i] = dto.TrendPoint(tp)
	}
	return out
}
