package models

// User field names accepted by the update endpoint.
const (
	FieldID           = "id"
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldNumQuestions = "num_questions"
	FieldNumCorrect   = "num_correct"
)

// UserFields lists every updatable user column.
var UserFields = []string{FieldID, FieldUsername, FieldPassword, FieldNumQuestions, FieldNumCorrect}

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"not null;uniqueIndex;size:255" validate:"required"`
	// Password is stored and compared as-is; the service predates hashing
	// and the API contract exposes plain credentials.
	Password     string `json:"password" gorm:"not null;size:255" validate:"required"`
	NumQuestions int    `json:"num_questions" gorm:"default:0"`
	NumCorrect   int    `json:"num_correct" gorm:"default:0"`
}

func (User) TableName() string {
	return "users"
}

func (u User) GetID() uint {
	return u.ID
}

func (u User) Format() map[string]any {
	return map[string]any{
		"id":            u.ID,
		"username":      u.Username,
		"password":      u.Password,
		"num_questions": u.NumQuestions,
		"num_correct":   u.NumCorrect,
	}
}

// PublicFormat is Format without the password, the shape returned to clients.
func (u User) PublicFormat() map[string]any {
	formatted := u.Format()
	delete(formatted, FieldPassword)
	return formatted
}
