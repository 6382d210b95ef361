package handler

import (
	"net/http"
	"strconv"

	facultyDto "anoa.com/schoolregistry/internal/modules/faculty/dto"
	"anoa.com/schoolregistry/internal/modules/student/dto"
	student "anoa.com/schoolregistry/internal/modules/student/service"
	"anoa.com/schoolregistry/pkg/apperror"
	"anoa.com/schoolregistry/pkg/response"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	service student.StudentService
}

func NewStudentHandler(service student.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	s, err := h.service.CreateStudent(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudentResponse(s))
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	s, err := h.service.GetStudent(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(s))
}

func (h *StudentHandler) GetStudentFaculty(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	f, err := h.service.GetStudentFaculty(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, facultyDto.ToFacultyResponse(f))
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	s, err := h.service.UpdateStudent(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(s))
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.DeleteStudent(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "student deleted successfully"})
}

// FindStudents filters by exact age; a missing or non-positive age yields an empty list.
func (h *StudentHandler) FindStudents(c *gin.Context) {
	var filter dto.AgeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "age must be a number", err))
		return
	}

	if filter.Age <= 0 {
		c.JSON(http.StatusOK, []dto.StudentResponse{})
		return
	}

	students, err := h.service.FindByAge(c.Request.Context(), filter.Age)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}

// FindStudentsBetween returns students with min <= age <= maxAge. Inconsistent bounds yield an empty list.
func (h *StudentHandler) FindStudentsBetween(c *gin.Context) {
	minAge, err := strconv.Atoi(c.Param("min"))
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "min age must be a number", err))
		return
	}

	rawMax := c.Query("maxAge")
	if rawMax == "" {
		c.JSON(http.StatusOK, []dto.StudentResponse{})
		return
	}
	maxAge, err := strconv.Atoi(rawMax)
	if err != nil {
		response.ResponseError(c, apperror.New(http.StatusBadRequest, "maxAge must be a number", err))
		return
	}

	if minAge < 0 || maxAge < 0 || minAge > maxAge {
		c.JSON(http.StatusOK, []dto.StudentResponse{})
		return
	}

	students, err := h.service.FindByAgeBetween(c.Request.Context(), minAge, maxAge)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponses(students))
}
