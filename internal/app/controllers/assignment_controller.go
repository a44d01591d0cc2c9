package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/models/dto"
	"github.com/ahassan/unisync/internal/app/viewmodels"
)

// AssignmentController exposes the assignment collection view-model.
type AssignmentController struct {
	assignments *viewmodels.AssignmentsViewModel
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignments *viewmodels.AssignmentsViewModel) *AssignmentController {
	return &AssignmentController{
		assignments: assignments,
	}
}

// ListAssignments returns the in-memory collection.
func (c *AssignmentController) ListAssignments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.assignments.Assignments()))
}

// ReloadAssignments replaces the in-memory collection from the remote
// store and returns the result.
func (c *AssignmentController) ReloadAssignments(ctx *gin.Context) {
	c.assignments.Load(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.assignments.Assignments()))
}

// CreateAssignment appends an assignment optimistically and schedules
// its pre-due reminders.
func (c *AssignmentController) CreateAssignment(ctx *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	priority := models.Priority(req.Priority)
	if !priority.IsValid() {
		priority = models.PriorityMedium
	}

	assignment := c.assignments.AddAssignment(req.Title, req.CourseID, req.DueDate, req.Notes, priority)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(assignment))
}

// UpdateAssignment edits an assignment in place and re-schedules its
// reminders against the new due date.
func (c *AssignmentController) UpdateAssignment(ctx *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid assignment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	priority := models.Priority(req.Priority)
	if !priority.IsValid() {
		priority = models.PriorityMedium
	}

	assignment, ok := c.assignments.UpdateAssignment(ctx.Param("id"), func(a *models.Assignment) {
		a.Title = req.Title
		a.CourseID = req.CourseID
		a.DueDate = req.DueDate
		a.Notes = req.Notes
		a.Priority = priority
	})
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Assignment not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// ToggleComplete flips the completed flag.
func (c *AssignmentController) ToggleComplete(ctx *gin.Context) {
	assignment, ok := c.assignments.ToggleComplete(ctx.Param("id"))
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Assignment not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(assignment))
}

// DeleteAssignment removes an assignment. Removing an absent id is a
// no-op.
func (c *AssignmentController) DeleteAssignment(ctx *gin.Context) {
	c.assignments.DeleteAssignment(ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}
