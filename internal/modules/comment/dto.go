package comment

type CommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

type LikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}
