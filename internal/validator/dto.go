package validator

// QuestionCreateRequest represents the request structure for creating questions
type QuestionCreateRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   uint   `json:"category" validate:"required"`
	Difficulty int    `json:"difficulty" validate:"required,min=1,max=5"`
}

// LoginRequest represents a login or first-time registration
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// QuizResultRequest represents a submitted quiz result; counters are
// pointers so an explicit zero survives decoding.
type QuizResultRequest struct {
	UserID       uint `json:"user_id" validate:"required"`
	NumCorrect   *int `json:"num_correct" validate:"required"`
	NumQuestions *int `json:"num_questions" validate:"required"`
}

// QuizCategoryRef references the category a quiz is drawn from; id 0 means
// all categories.
type QuizCategoryRef struct {
	ID uint `json:"id"`
}

// NextQuestionRequest asks for the next quiz question(s), excluding the ones
// already served.
type NextQuestionRequest struct {
	PreviousQuestions []uint           `json:"previous_questions"`
	QuizCategory      *QuizCategoryRef `json:"quiz_category"`
}
