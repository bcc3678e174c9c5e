package models

// User maps onto the pre-existing users table; the column names predate this
// service, hence the explicit tags.
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;unique;not null" json:"username"`
	Email    string `gorm:"column:e_mail;unique;not null" json:"email"`
	Password string `gorm:"column:password;not null" json:"-"`
	PlanID   *uint  `gorm:"column:plan_id" json:"-"`
}

func (User) TableName() string {
	return "users"
}
