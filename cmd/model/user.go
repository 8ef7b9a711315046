package model

type User struct {
	UserId    int64  `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserName  string `gorm:"column:user_name" json:"user_name"`
	Email     string `gorm:"column:email;uniqueIndex" json:"email"`
	Password  string `gorm:"column:password" json:"-"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
