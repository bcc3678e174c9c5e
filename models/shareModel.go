package models

// Share records a grant of a file to another user. FileID is nullable in the
// deployed schema even though every insert sets it; kept as-is to stay
// compatible with existing rows.
type Share struct {
	ID               uint   `gorm:"column:share_id;primaryKey" json:"share_id"`
	FileID           *uint  `gorm:"column:file_id" json:"file_id"`
	OwnerID          uint   `gorm:"column:owner_id;not null" json:"owner_id"`
	SharedWithUserID *uint  `gorm:"column:shared_with_user_id" json:"shared_with_user_id"`
	Permission       string `gorm:"column:permission;not null" json:"permission"`
}

func (Share) TableName() string {
	return "shares"
}
