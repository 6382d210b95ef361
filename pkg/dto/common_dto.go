package dto

// PageResponse is the listing envelope. PageNumber is zero based; Unpaged marks a full listing.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	Unpaged       bool  `json:"unpaged"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
