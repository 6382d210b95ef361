package handler

import (
	"net/http"
	"strings"

	"anoa.com/schoolregistry/internal/modules/faculty/dto"
	faculty "anoa.com/schoolregistry/internal/modules/faculty/service"
	studentDto "anoa.com/schoolregistry/internal/modules/student/dto"
	"anoa.com/schoolregistry/pkg/response"
	"github.com/gin-gonic/gin"
)

type FacultyHandler struct {
	service faculty.FacultyService
}

func NewFacultyHandler(service faculty.FacultyService) *FacultyHandler {
	return &FacultyHandler{service: service}
}

func (h *FacultyHandler) CreateFaculty(c *gin.Context) {
	var req dto.FacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	f, err := h.service.CreateFaculty(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFacultyResponse(f))
}

func (h *FacultyHandler) GetFaculty(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	f, err := h.service.GetFaculty(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacultyResponse(f))
}

func (h *FacultyHandler) UpdateFaculty(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.FacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ResponseError(c, err)
		return
	}

	f, err := h.service.UpdateFaculty(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacultyResponse(f))
}

func (h *FacultyHandler) DeleteFaculty(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.DeleteFaculty(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "faculty deleted successfully"})
}

// FindFaculties filters by exact color; a blank color yields an empty list.
func (h *FacultyHandler) FindFaculties(c *gin.Context) {
	var filter dto.ColorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, err)
		return
	}

	if strings.TrimSpace(filter.Color) == "" {
		c.JSON(http.StatusOK, []dto.FacultyResponse{})
		return
	}

	faculties, err := h.service.FindByColor(c.Request.Context(), filter.Color)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacultyResponses(faculties))
}

func (h *FacultyHandler) FindByNameOrColor(c *gin.Context) {
	var filter dto.NameOrColorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, err)
		return
	}

	if strings.TrimSpace(filter.Value) == "" {
		c.JSON(http.StatusOK, []dto.FacultyResponse{})
		return
	}

	faculties, err := h.service.FindByNameOrColorIgnoreCase(c.Request.Context(), filter.Value)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacultyResponses(faculties))
}

func (h *FacultyHandler) SearchFaculties(c *gin.Context) {
	var filter dto.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.ResponseError(c, err)
		return
	}

	if strings.TrimSpace(filter.Query) == "" {
		c.JSON(http.StatusOK, []dto.FacultyResponse{})
		return
	}

	faculties, err := h.service.SearchFaculties(c.Request.Context(), filter.Query, filter.Limit)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFacultyResponses(faculties))
}

func (h *FacultyHandler) GetFacultyStudents(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	students, err := h.service.FindStudentsByFacultyID(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, studentDto.ToStudentResponses(students))
}
