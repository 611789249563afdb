package models

// Question represents a single trivia item.
// Category is a soft reference to Category.ID, no foreign key is enforced.
type Question struct {
	ID         uint   `gorm:"primaryKey"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	Category   uint   `gorm:"not null;index"`
	Difficulty int    `gorm:"not null"`
}

func (q *Question) TableName() string {
	return "questions"
}

// ToMap returns the flat attribute mapping used for JSON output.
func (q *Question) ToMap() map[string]any {
	return map[string]any{
		"id":         q.ID,
		"question":   q.Question,
		"answer":     q.Answer,
		"category":   q.Category,
		"difficulty": q.Difficulty,
	}
}
