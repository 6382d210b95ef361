package dto

import "anoa.com/schoolregistry/internal/entity"

// FacultyRequest is used for create and partial update; nil fields are left untouched on update.
type FacultyRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Color *string `json:"color" binding:"omitempty,max=100"`
}

type FacultyResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ColorFilter struct {
	Color string `form:"color"`
}

type NameOrColorFilter struct {
	Value string `form:"value"`
}

type SearchFilter struct {
	Query string `form:"q"`
	Limit int64  `form:"limit" binding:"omitempty,min=1,max=100"`
}

func ToFacultyResponse(f *entity.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:    f.ID,
		Name:  f.Name,
		Color: f.Color,
	}
}

func ToFacultyResponses(faculties []*entity.Faculty) []FacultyResponse {
	out := make([]FacultyResponse, 0, len(faculties))
	for _, f := range faculties {
		out = append(out, ToFacultyResponse(f))
	}
	return out
}
