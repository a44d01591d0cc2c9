package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahassan/unisync/internal/app/models/dto"
	"github.com/ahassan/unisync/internal/app/viewmodels"
)

// upcomingLimit caps how many pending assignments the dashboard
// surfaces.
const upcomingLimit = 5

// DashboardController exposes the aggregated dashboard projections.
type DashboardController struct {
	dashboard *viewmodels.DashboardViewModel
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboard *viewmodels.DashboardViewModel) *DashboardController {
	return &DashboardController{
		dashboard: dashboard,
	}
}

// GetDashboard returns the projections over the last loaded snapshot.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.buildResponse()))
}

// ReloadDashboard refreshes all three collections in parallel before
// projecting.
func (c *DashboardController) ReloadDashboard(ctx *gin.Context) {
	c.dashboard.Load(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.buildResponse()))
}

func (c *DashboardController) buildResponse() dto.DashboardResponse {
	pending := c.dashboard.PendingAssignments()

	upcoming := make([]dto.UpcomingTask, 0, upcomingLimit)
	for _, a := range c.dashboard.Upcoming(upcomingLimit) {
		name, _ := c.dashboard.CourseName(a.CourseID)
		upcoming = append(upcoming, dto.UpcomingTask{
			Assignment: a,
			CourseName: name,
		})
	}

	return dto.DashboardResponse{
		CourseCount:  c.dashboard.CourseCount(),
		PendingCount: len(pending),
		GoalCount:    c.dashboard.GoalCount(),
		TotalHours:   c.dashboard.TotalHours(),
		Upcoming:     upcoming,
		Pending:      pending,
	}
}
