package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Topics published by the service.
const (
	TopicQuestionCreated = "trivia.question.created"
	TopicQuizCompleted   = "trivia.quiz.completed"
)

// Event is the envelope written to the broker.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

// QuestionCreatedPayload announces a newly created question.
type QuestionCreatedPayload struct {
	QuestionID uint   `json:"question_id"`
	CategoryID uint   `json:"category_id"`
	Difficulty int    `json:"difficulty"`
	Text       string `json:"question"`
}

// QuizCompletedPayload announces a saved quiz result.
type QuizCompletedPayload struct {
	UserID       uint `json:"user_id"`
	NumCorrect   int  `json:"num_correct"`
	NumQuestions int  `json:"num_questions"`
}

// Publisher emits domain events after the corresponding database work has
// committed. Publishing is best-effort; callers log failures and move on.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
	Close() error
}

// marshalEvent wraps a payload in the event envelope as a watermill message.
func marshalEvent(topic string, payload any) (*message.Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}

	event := Event{
		ID:         watermill.NewUUID(),
		Type:       topic,
		OccurredAt: time.Now().UTC(),
		Payload:    payloadBytes,
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return message.NewMessage(event.ID, eventBytes), nil
}
