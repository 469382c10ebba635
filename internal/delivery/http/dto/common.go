package dto

type SortResponse struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

type ListResponse[T any] struct {
	Items      []T          `json:"items"`
	Total      int          `json:"total"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
	Sort       SortResponse `json:"sort"`
	VisibleIDs []string     `json:"visibleIds,omitempty"`
	Stats      any          `json:"stats,omitempty"`
}
