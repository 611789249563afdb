package models

// Category represents a labeled grouping of trivia questions.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Type string `gorm:"not null"`
}

func (c *Category) TableName() string {
	return "categories"
}

// ToMap returns the flat attribute mapping used for JSON output.
func (c *Category) ToMap() map[string]any {
	return map[string]any{
		"id":   c.ID,
		"type": c.Type,
	}
}
