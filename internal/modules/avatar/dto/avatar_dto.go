package dto

import "anoa.com/schoolregistry/internal/entity"

// AvatarFile is an uploaded image already read into memory.
type AvatarFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

type AvatarResponse struct {
	ID        uint   `json:"id"`
	StudentID uint   `json:"student_id"`
	FilePath  string `json:"file_path"`
	FileSize  int64  `json:"file_size"`
	MediaType string `json:"media_type"`
}

func ToAvatarResponse(a *entity.Avatar) AvatarResponse {
	return AvatarResponse{
		ID:        a.ID,
		StudentID: a.StudentID,
		FilePath:  a.FilePath,
		FileSize:  a.FileSize,
		MediaType: a.MediaType,
	}
}

func ToAvatarResponses(avatars []*entity.Avatar) []AvatarResponse {
	out := make([]AvatarResponse, 0, len(avatars))
	for _, a := range avatars {
		out = append(out, ToAvatarResponse(a))
	}
	return out
}
