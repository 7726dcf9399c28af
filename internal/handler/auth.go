package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openboard/backend/internal/model"
	"github.com/openboard/backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Signup godoc
// @Summary Register a new user
// @Description Creates a user account. No token is issued; log in afterwards.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Name, email and password"
// @Success 201 {object} model.ConfirmationResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrMissingField.Error()})
		return
	}

	if err := h.svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.ConfirmationResponse{Message: "user created"})
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.TokenResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{Token: token})
}

func writeError(c *gin.Context, err error) {
	switch err {
	case service.ErrMissingField:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case service.ErrDuplicateEmail:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case service.ErrInvalidCredentials, service.ErrMissingCredential, service.ErrInvalidToken:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
