package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/careerpath/internal/server/http/dto"
	"github.com/polkiloo/careerpath/internal/server/http/middleware"
)

// CareerHandler serves job matching, bias checking and interview questions.
type CareerHandler struct {
	facade CareerFacade
}

func NewCareerHandler(facade CareerFacade) *CareerHandler {
	return &CareerHandler{facade: facade}
}

// Match handles POST /api/resume/match.
func (h *CareerHandler) Match(c *gin.Context) {
	var req dto.MatchRequest
	if !bindJSON(c, &req) {
		return
	}

	match, err := h.facade.MatchJob(req.JobRole, req.ResumeSkills)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMatchResponse(match))
}

// CheckBias handles POST /api/career/check-bias.
func (h *CareerHandler) CheckBias(c *gin.Context) {
	var req dto.BiasRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.facade.CheckBias(req.ResumeText)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// InterviewQuestions handles POST /api/career/predict-interview-questions.
func (h *CareerHandler) InterviewQuestions(c *gin.Context) {
	var req dto.QuestionsRequest
	if !bindJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsResponse{Questions: h.facade.InterviewQuestions(req.Skills)})
}
