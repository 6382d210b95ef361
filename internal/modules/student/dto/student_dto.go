package dto

import "anoa.com/schoolregistry/internal/entity"

// StudentRequest is used for create and partial update. On update a nil Name, a zero Age and a nil
// FacultyID leave the stored value as is.
type StudentRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Age       int     `json:"age" binding:"gte=0"`
	FacultyID *uint   `json:"faculty_id"`
}

type StudentResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	FacultyID *uint  `json:"faculty_id"`
}

type AgeFilter struct {
	Age int `form:"age"`
}

type AverageAgeResponse struct {
	AverageAge float64 `json:"average_age"`
}

type QuantityResponse struct {
	Quantity int64 `json:"quantity"`
}

func ToStudentResponse(s *entity.Student) StudentResponse {
	return StudentResponse{
		ID:        s.ID,
		Name:      s.Name,
		Age:       s.Age,
		FacultyID: s.FacultyID,
	}
}

func ToStudentResponses(students []*entity.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, ToStudentResponse(s))
	}
	return out
}
