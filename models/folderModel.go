package models

type Folder struct {
	ID     uint   `gorm:"column:folder_id;primaryKey" json:"id"`
	Name   string `gorm:"column:folder_name;not null" json:"name"`
	UserID uint   `gorm:"column:user_id;not null" json:"-"`
}

func (Folder) TableName() string {
	return "folder"
}
