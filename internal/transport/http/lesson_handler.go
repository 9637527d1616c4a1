package handlers

import (
	"net/http"

	"lmsplatform/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type LessonHandler struct {
	lessons  *usecase.LessonUseCase
	progress *usecase.ProgressUseCase
}

func NewLessonHandler(lessons *usecase.LessonUseCase, progress *usecase.ProgressUseCase) *LessonHandler {
	return &LessonHandler{lessons: lessons, progress: progress}
}

type createLessonReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// POST /courses/:id/lessons
func (h *LessonHandler) Create(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req createLessonReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson, err := h.lessons.Create(c, courseID, req.Title, req.Content, req.Order)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

// GET /courses/:id/lessons
func (h *LessonHandler) ListByCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, size := parsePagination(c)

	lessons, total, err := h.lessons.ListByCourse(c, courseID, size, (page-1)*size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(lessons, total, page, size))
}

// GET /lessons/:id
func (h *LessonHandler) GetOne(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lesson, err := h.lessons.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, lesson)
}

// POST /lessons/:id/complete
func (h *LessonHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	lessonID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	completion, err := h.lessons.Complete(c, userID, lessonID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, completion)
}

// GET /courses/:id/progress
func (h *LessonHandler) CourseProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	progress, err := h.progress.CourseProgress(c, userID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}
