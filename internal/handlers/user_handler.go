package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-trivia/trivia-service/internal/repositories"
	"github.com/fsnd-trivia/trivia-service/internal/services"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userService: userService,
	}
}

// Login logs a user in, registering unknown usernames on the fly
// @Summary Login or register
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Details: err.Error()})
		return
	}

	h.LogRequest(c, "Login attempt", "username", req.Username)

	user, err := h.userService.LoginOrRegister(c.Request.Context(), &req)
	if err != nil {
		h.RespondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.PublicFormat()})
}

// GetUser returns one user by id
// @Summary Get user
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.RespondError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.PublicFormat()})
}

// UpdateUser applies a partial update to a user. mode=add accumulates the
// submitted counters onto the stored ones, mode=set (default) overwrites.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param mode query string false "add or set (default: set)"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body", Details: err.Error()})
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "empty update"})
		return
	}

	op := repositories.UpdateSet
	if c.Query("mode") == "add" {
		op = repositories.UpdateAdd
	}

	h.LogRequest(c, "Updating user", "user_id", id, "mode", op.String())

	user, err := h.userService.UpdateByID(c.Request.Context(), id, updates, op)
	if err != nil {
		h.RespondError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.PublicFormat()})
}
