package models

// Plan rows are created lazily the first time a name is requested. Ids are
// assigned by the handler (max+1) rather than by a sequence, so no
// autoIncrement here.
type Plan struct {
	ID   uint   `gorm:"column:plan_id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:plan_name;unique;not null" json:"name"`
}

func (Plan) TableName() string {
	return "plans"
}
