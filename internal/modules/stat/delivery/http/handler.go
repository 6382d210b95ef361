package http

import (
	"net/http"

	statService "anoa.com/schoolregistry/internal/modules/stat/service"
	studentDto "anoa.com/schoolregistry/internal/modules/student/dto"
	"anoa.com/schoolregistry/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	statService statService.StatService
}

func NewStatHandler(statService statService.StatService) *StatHandler {
	return &StatHandler{
		statService: statService,
	}
}

func (h *StatHandler) GetStudentsQuantity(c *gin.Context) {
	count, err := h.statService.GetStudentsQuantity(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, studentDto.QuantityResponse{Quantity: count})
}

func (h *StatHandler) GetStudentsAverageAge(c *gin.Context) {
	avg, err := h.statService.GetStudentsAverageAge(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, studentDto.AverageAgeResponse{AverageAge: avg})
}

func (h *StatHandler) GetLastFiveStudents(c *gin.Context) {
	students, err := h.statService.GetLastFiveStudents(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, studentDto.ToStudentResponses(students))
}
