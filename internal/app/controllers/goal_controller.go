package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahassan/unisync/internal/app/models/dto"
	"github.com/ahassan/unisync/internal/app/viewmodels"
)

// GoalController exposes the study goal collection view-model.
type GoalController struct {
	goals *viewmodels.StudyGoalsViewModel
}

// NewGoalController creates a new GoalController
func NewGoalController(goals *viewmodels.StudyGoalsViewModel) *GoalController {
	return &GoalController{
		goals: goals,
	}
}

// ListGoals returns the in-memory collection.
func (c *GoalController) ListGoals(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.goals.Goals()))
}

// ReloadGoals replaces the in-memory collection from the remote store
// and returns the result.
func (c *GoalController) ReloadGoals(ctx *gin.Context) {
	c.goals.Load(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.goals.Goals()))
}

// CreateGoal appends a goal with zero completed hours.
func (c *GoalController) CreateGoal(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid goal data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	goal := c.goals.AddGoal(req.Title, req.CourseID, req.TargetHours)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(goal))
}

// LogHours adds study time to a goal, clamped at the goal's target.
func (c *GoalController) LogHours(ctx *gin.Context) {
	var req dto.LogHoursRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid hours")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	goal, ok := c.goals.LogHours(ctx.Param("id"), req.Hours)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Study goal not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(goal))
}

// DeleteGoal removes a goal. Removing an absent id is a no-op.
func (c *GoalController) DeleteGoal(ctx *gin.Context) {
	c.goals.DeleteGoal(ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}
