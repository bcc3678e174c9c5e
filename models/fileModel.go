package models

// File holds either inline content or, for drive uploads, a sentinel string
// pointing at the external object. FolderID/FolderName are denormalized and
// never validated against the folder table.
type File struct {
	ID         uint    `gorm:"column:file_id;primaryKey" json:"id"`
	Name       string  `gorm:"column:file_name;not null" json:"name"`
	Size       int64   `gorm:"column:file_size" json:"size"`
	UserID     uint    `gorm:"column:user_id;not null" json:"-"`
	FolderID   *uint   `gorm:"column:folder_id" json:"folderId"`
	FolderName *string `gorm:"column:folder_name" json:"folderName"`
	Content    string  `gorm:"column:content;type:text" json:"content"`
}

func (File) TableName() string {
	return "file"
}
