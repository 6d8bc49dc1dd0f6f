package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsnd-trivia/trivia-service/internal/events"
	"github.com/fsnd-trivia/trivia-service/internal/models"
	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/validator"
)

func newUserService(repo *fakeRepository, publisher events.Publisher) UserService {
	return NewUserService(repo, testLogger(), newTestValidator(), publisher)
}

func intPtr(n int) *int { return &n }

func TestUserUpdateByIDAddsCounters(t *testing.T) {
	repo := newFakeRepository()
	repo.user.getResults = []repositories.SearchResult[models.User]{
		{First: &models.User{ID: 3, Username: "player", NumQuestions: 10, NumCorrect: 6}},
		{First: &models.User{ID: 3, Username: "player", NumQuestions: 15, NumCorrect: 9}},
	}
	svc := newUserService(repo, newTestPublisher(t))

	user, err := svc.UpdateByID(context.Background(), 3, map[string]any{
		models.FieldNumQuestions: 5,
		models.FieldNumCorrect:   3,
	}, repositories.UpdateAdd)
	require.NoError(t, err)

	// Stored values were merged additively before the bulk update.
	require.Len(t, repo.user.updates, 1)
	assert.Equal(t, 15, repo.user.updates[0][models.FieldNumQuestions])
	assert.Equal(t, 9, repo.user.updates[0][models.FieldNumCorrect])

	// The returned row is the re-read, not the input.
	assert.Equal(t, 15, user.NumQuestions)
	assert.Equal(t, 9, user.NumCorrect)
}

func TestUserUpdateByIDSetOverwrites(t *testing.T) {
	repo := newFakeRepository()
	repo.user.getResults = []repositories.SearchResult[models.User]{
		{First: &models.User{ID: 3, NumQuestions: 10, NumCorrect: 6}},
		{First: &models.User{ID: 3, NumQuestions: 5, NumCorrect: 3}},
	}
	svc := newUserService(repo, newTestPublisher(t))

	user, err := svc.UpdateByID(context.Background(), 3, map[string]any{
		models.FieldNumQuestions: 5,
		models.FieldNumCorrect:   3,
	}, repositories.UpdateSet)
	require.NoError(t, err)

	require.Len(t, repo.user.updates, 1)
	assert.Equal(t, 5, repo.user.updates[0][models.FieldNumQuestions])
	assert.Equal(t, 3, repo.user.updates[0][models.FieldNumCorrect])
	assert.Equal(t, 5, user.NumQuestions)
}

func TestUserUpdateByIDRejectsBadInput(t *testing.T) {
	repo := newFakeRepository()
	svc := newUserService(repo, newTestPublisher(t))

	t.Run("unknown field", func(t *testing.T) {
		_, err := svc.UpdateByID(context.Background(), 3, map[string]any{"role": "admin"}, repositories.UpdateSet)
		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})

	t.Run("id change", func(t *testing.T) {
		_, err := svc.UpdateByID(context.Background(), 3, map[string]any{models.FieldID: 9}, repositories.UpdateSet)
		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})

	t.Run("read mode is not an update", func(t *testing.T) {
		_, err := svc.UpdateByID(context.Background(), 3, map[string]any{models.FieldNumCorrect: 1}, repositories.GetAll)
		assert.True(t, repositories.IsInvalidArgumentError(err))
	})

	assert.Empty(t, repo.user.updates)
}

func TestUserUpdateByIDMissingUser(t *testing.T) {
	repo := newFakeRepository()
	svc := newUserService(repo, newTestPublisher(t))

	_, err := svc.UpdateByID(context.Background(), 3, map[string]any{models.FieldNumCorrect: 1}, repositories.UpdateSet)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginOrRegister(t *testing.T) {
	t.Run("registers unknown username", func(t *testing.T) {
		repo := newFakeRepository()
		svc := newUserService(repo, newTestPublisher(t))

		user, err := svc.LoginOrRegister(context.Background(), &LoginRequest{Username: " newcomer ", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "newcomer", user.Username)
		assert.Len(t, repo.user.created, 1)
	})

	t.Run("matching password logs in", func(t *testing.T) {
		repo := newFakeRepository()
		repo.user.getResults = []repositories.SearchResult[models.User]{
			{First: &models.User{ID: 1, Username: "player", Password: "pw"}},
		}
		svc := newUserService(repo, newTestPublisher(t))

		user, err := svc.LoginOrRegister(context.Background(), &LoginRequest{Username: "player", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Empty(t, repo.user.created)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		repo := newFakeRepository()
		repo.user.getResults = []repositories.SearchResult[models.User]{
			{First: &models.User{ID: 1, Username: "player", Password: "pw"}},
		}
		svc := newUserService(repo, newTestPublisher(t))

		_, err := svc.LoginOrRegister(context.Background(), &LoginRequest{Username: "player", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("blank credentials fail validation", func(t *testing.T) {
		repo := newFakeRepository()
		svc := newUserService(repo, newTestPublisher(t))

		_, err := svc.LoginOrRegister(context.Background(), &LoginRequest{Username: "  ", Password: ""})
		var validationErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &validationErrs)
	})
}

func TestSaveQuizResult(t *testing.T) {
	repo := newFakeRepository()
	repo.user.getResults = []repositories.SearchResult[models.User]{
		{First: &models.User{ID: 3, NumQuestions: 10, NumCorrect: 6}},
		{First: &models.User{ID: 3, NumQuestions: 15, NumCorrect: 9}},
	}
	publisher := newTestPublisher(t)
	svc := newUserService(repo, publisher)

	user, err := svc.SaveQuizResult(context.Background(), &QuizResultRequest{
		UserID:       3,
		NumCorrect:   intPtr(3),
		NumQuestions: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 15, user.NumQuestions)
	assert.Equal(t, 9, user.NumCorrect)

	published := publisher.Published()
	require.Len(t, published, 1)
	assert.Equal(t, events.TopicQuizCompleted, published[0].Topic)

	payload, ok := published[0].Payload.(events.QuizCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, uint(3), payload.UserID)
	assert.Equal(t, 3, payload.NumCorrect)
	assert.Equal(t, 5, payload.NumQuestions)
}

func TestSaveQuizResultRequiresCounters(t *testing.T) {
	repo := newFakeRepository()
	svc := newUserService(repo, newTestPublisher(t))

	_, err := svc.SaveQuizResult(context.Background(), &QuizResultRequest{UserID: 3})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}
