package model

// Video metadata is immutable after creation. The raw payload lives in blob
// storage; VideoUrl is the opaque reference it hands back.
type Video struct {
	VideoId   int64  `gorm:"column:video_id;primaryKey;autoIncrement" json:"video_id"`
	UserId    int64  `gorm:"column:user_id;index" json:"user_id"`
	Title     string `gorm:"column:title" json:"title"`
	VideoUrl  string `gorm:"column:video_url" json:"video_url"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
}

func (v *Video) TableName() string {
	return "videos"
}
