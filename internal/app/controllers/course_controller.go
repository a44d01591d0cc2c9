package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/app/models/dto"
	"github.com/ahassan/unisync/internal/app/viewmodels"
)

// CourseController exposes the course collection view-model.
type CourseController struct {
	courses *viewmodels.CoursesViewModel
}

// NewCourseController creates a new CourseController
func NewCourseController(courses *viewmodels.CoursesViewModel) *CourseController {
	return &CourseController{
		courses: courses,
	}
}

// ListCourses returns the in-memory collection; it does not touch the
// remote store.
func (c *CourseController) ListCourses(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.courses.Courses()))
}

// ReloadCourses replaces the in-memory collection from the remote
// store and returns the result.
func (c *CourseController) ReloadCourses(ctx *gin.Context) {
	c.courses.Load(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.courses.Courses()))
}

// CreateCourse appends a course optimistically.
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course := c.courses.AddCourse(req.Code, req.Name, req.Instructor, req.Schedule, req.Location, req.Color)
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(course))
}

// UpdateCourse edits a course in place.
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	course, ok := c.courses.UpdateCourse(ctx.Param("id"), func(course *models.Course) {
		course.Code = req.Code
		course.Name = req.Name
		course.Instructor = req.Instructor
		course.Schedule = req.Schedule
		course.Location = req.Location
		course.Color = req.Color
	})
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// DeleteCourse removes a course. Removing an absent id is a no-op.
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	c.courses.DeleteCourse(ctx.Param("id"))
	ctx.Status(http.StatusNoContent)
}
