package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openboard/backend/internal/model"
	"github.com/openboard/backend/internal/service"
)

type MessageHandler struct {
	svc *service.MessageService
}

func NewMessageHandler(svc *service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// List godoc
// @Summary List all messages
// @Description Public listing of every message with its author's name, oldest first.
// @Tags messages
// @Produce json
// @Success 200 {array} model.MessageEntry
// @Failure 500 {object} model.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary Post a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateMessageRequest true "Message text"
// @Success 201 {object} model.ConfirmationResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	userID, ok := GetAuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrMissingCredential.Error()})
		return
	}

	var req model.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrMissingField.Error()})
		return
	}

	if err := h.svc.Create(c.Request.Context(), userID, req.Text); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.ConfirmationResponse{Message: "message created"})
}
