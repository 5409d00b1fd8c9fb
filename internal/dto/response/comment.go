package response

import (
	"streaming-catalog/internal/data/entity"
)

type CommentThreadResponse struct {
	Comments []entity.Comment `json:"comments"`
	Total    int              `json:"total"`
}

func ThreadToResponse(thread []entity.Comment) CommentThreadResponse {
	return CommentThreadResponse{
		Comments: thread,
		Total:    entity.CountComments(thread),
	}
}
