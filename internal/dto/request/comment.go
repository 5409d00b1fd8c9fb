package request

type PostCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type ReplyRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}
