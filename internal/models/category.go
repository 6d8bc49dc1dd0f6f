package models

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"not null;uniqueIndex;size:100" validate:"required,max=100"`
}

func (Category) TableName() string {
	return "categories"
}

func (c Category) GetID() uint {
	return c.ID
}

func (c Category) Format() map[string]any {
	return map[string]any{
		"id":   c.ID,
		"type": c.Type,
	}
}
