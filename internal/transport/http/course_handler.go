package handlers

import (
	"net/http"

	"lmsplatform/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courses *usecase.CourseUseCase
}

func NewCourseHandler(courses *usecase.CourseUseCase) *CourseHandler {
	return &CourseHandler{courses: courses}
}

type createCourseReq struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// POST /courses
func (h *CourseHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createCourseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courses.Create(c, req.Title, req.Description, req.Instructor, req.Price, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

// GET /courses
func (h *CourseHandler) List(c *gin.Context) {
	page, size := parsePagination(c)

	courses, total, err := h.courses.List(c, size, (page-1)*size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(courses, total, page, size))
}

// GET /courses/:id
func (h *CourseHandler) GetOne(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courses.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// POST /courses/:id/enroll
func (h *CourseHandler) Enroll(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	enrollment, err := h.courses.Enroll(c, userID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, enrollment)
}

// GET /enrollments
func (h *CourseHandler) MyEnrollments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, size := parsePagination(c)

	enrollments, total, err := h.courses.MyEnrollments(c, userID, size, (page-1)*size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(enrollments, total, page, size))
}
