package model

// VideoLike rows form the like-set of a video. The unique index makes a
// duplicate membership impossible even if two inserts race.
type VideoLike struct {
	VideoLikeId int64  `gorm:"column:video_like_id;primaryKey;autoIncrement" json:"video_like_id"`
	VideoId     int64  `gorm:"column:video_id;uniqueIndex:idx_video_user" json:"video_id"`
	UserId      int64  `gorm:"column:user_id;uniqueIndex:idx_video_user" json:"user_id"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`
}

func (l *VideoLike) TableName() string {
	return "video_likes"
}

// Comment rows are append-only. No update or delete path exists.
type Comment struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey;autoIncrement" json:"comment_id"`
	VideoId   int64  `gorm:"column:video_id;index" json:"video_id"`
	UserId    int64  `gorm:"column:user_id" json:"user_id"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (c *Comment) TableName() string {
	return "comments"
}

// CommentWithAuthor is a comment denormalized with the author's display name,
// the shape every read path hands out.
type CommentWithAuthor struct {
	Comment
	UserName string `json:"user_name"`
}
