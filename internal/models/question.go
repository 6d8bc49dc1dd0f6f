package models

// Difficulty bounds enforced on question creation and by a database
// check constraint.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Text       string `json:"question" gorm:"column:question;type:text;not null;uniqueIndex" validate:"required"`
	Answer     string `json:"answer" gorm:"type:text;not null" validate:"required"`
	Match      string `json:"match" gorm:"type:text;not null"`
	CategoryID uint   `json:"category" gorm:"column:category;not null;index" validate:"required"`
	Difficulty int    `json:"difficulty" gorm:"check:difficulty >= 1 AND difficulty <= 5" validate:"min=1,max=5"`

	// Relations
	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}

// NewQuestion builds a question with its match term derived from the answer.
func NewQuestion(text, answer string, categoryID uint, difficulty int) *Question {
	answer, match := GenerateMatch(answer)
	return &Question{
		Text:       text,
		Answer:     answer,
		Match:      match,
		CategoryID: categoryID,
		Difficulty: difficulty,
	}
}

func (Question) TableName() string {
	return "questions"
}

func (q Question) GetID() uint {
	return q.ID
}

// Format returns the response shape used by the API; Match is included so
// clients can grade answers locally.
func (q Question) Format() map[string]any {
	return map[string]any{
		"id":         q.ID,
		"question":   q.Text,
		"answer":     q.Answer,
		"match":      q.Match,
		"category":   q.CategoryID,
		"difficulty": q.Difficulty,
	}
}
