package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/models"
	"tourcrm/internal/services"
)

type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// @Summary      Sign up
// @Description  Creates the account and returns an access token; next is onboarding
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.SignupRequest  true  "signup form"
// @Success      201   {object}  NavigationResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	session, next, err := h.Service.Signup(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NavigationResponse{Next: next, Data: session})
}

// @Summary      Log in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "credentials"
// @Success      200   {object}  NavigationResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	session, next, err := h.Service.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NavigationResponse{Next: next, Data: session})
}

// @Summary      Forgot password
// @Description  Always answers the same way whether or not the email is known
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.ForgotPasswordRequest  true  "email"
// @Success      202   {object}  NavigationResponse
// @Router       /auth/forgot [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	next, err := h.Service.ForgotPassword(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, NavigationResponse{Next: next})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}
	next, err := h.Service.ResetPassword(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NavigationResponse{Next: next})
}
