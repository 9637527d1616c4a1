package handlers

import (
	"net/http"

	"lmsplatform/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizzes *usecase.QuizUseCase
}

func NewQuizHandler(quizzes *usecase.QuizUseCase) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

type createQuizReq struct {
	Title string `json:"title" binding:"required"`
}

type createQuestionReq struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectOption int      `json:"correct_option"`
}

type attemptReq struct {
	Answers []int `json:"answers"`
}

// POST /courses/:id/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req createQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizzes.Create(c, courseID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// GET /courses/:id/quizzes
func (h *QuizHandler) ListByCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, size := parsePagination(c)

	quizzes, total, err := h.quizzes.ListByCourse(c, courseID, size, (page-1)*size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(quizzes, total, page, size))
}

// POST /quizzes/:id/questions
func (h *QuizHandler) AddQuestion(c *gin.Context) {
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req createQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.quizzes.AddQuestion(c, quizID, req.Text, req.Options, req.CorrectOption)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// GET /quizzes/:id/questions
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, size := parsePagination(c)

	questions, total, err := h.quizzes.ListQuestions(c, quizID, size, (page-1)*size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(questions, total, page, size))
}

// POST /quizzes/:id/attempt
func (h *QuizHandler) Attempt(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req attemptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.quizzes.Attempt(c, userID, quizID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

// GET /quizzes/:id/attempts
func (h *QuizHandler) ListAttempts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quizID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	page, size := parsePagination(c)

	attempts, total, err := h.quizzes.ListAttempts(c, userID, quizID, size, (page-1)*size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(attempts, total, page, size))
}
