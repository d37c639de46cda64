package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"learnsphere/config"
	"learnsphere/domain"
	"learnsphere/dto"
	"learnsphere/middleware"
	"learnsphere/utils"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase) {
	handler := &AuthHandler{authUC: authUC}

	// Ping Route (no rate limiting)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	public := r.Group("/student")
	{
		public.POST("/register", middleware.RateLimit("auth_register"), handler.Register)
		public.POST("/login", middleware.RateLimit("auth_login"), handler.Login)
		public.POST("/forgot-password", middleware.RateLimit("auth_forgot_password"), handler.ForgotPassword)
	}

	protected := r.Group("/student")
	protected.Use(config.AuthMiddleware(handler.authUC.GetAccessTokenManager()))
	{
		protected.PATCH("/change-password", handler.ChangePassword)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := domain.E(domain.ErrValidation, utils.TranslateValidationError(err))
		respondError(c, nil, "Register", "Failed to register", verr)
		return
	}

	if err := h.authUC.Register(
		c.Request.Context(),
		req.Email,
		req.Password,
		req.Name,
	); err != nil {
		respondError(c, &req.Email, "Register", "Failed to register", err)
		return
	}

	utils.PrintLogInfo(&req.Email, 201, "Register", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Student registered successfully.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := domain.E(domain.ErrValidation, utils.TranslateValidationError(err))
		respondError(c, nil, "Login", "Failed to login", verr)
		return
	}

	token, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, &req.Email, "Login", "Failed to login", err)
		return
	}

	utils.PrintLogInfo(&req.Email, 200, "Login", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	name := utils.GetAPIHitter(c)

	studentID, exists := c.Get("studentID")
	if !exists {
		utils.PrintLogInfo(&name, 401, "ChangePassword", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Unauthorized: missing user context",
			"message": "Failed to change password",
		})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := domain.E(domain.ErrValidation, utils.TranslateValidationError(err))
		respondError(c, &name, "ChangePassword", "Failed to change password", verr)
		return
	}

	err := h.authUC.ChangePassword(c.Request.Context(), studentID.(uint), req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, &name, "ChangePassword", "Failed to change password", err)
		return
	}

	utils.PrintLogInfo(&name, 200, "ChangePassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password changed successfully",
	})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		verr := domain.E(domain.ErrValidation, utils.TranslateValidationError(err))
		respondError(c, nil, "ForgotPassword", "Failed to reset password", verr)
		return
	}

	if err := h.authUC.ResetPassword(c.Request.Context(), req.Email, req.NewPassword); err != nil {
		respondError(c, &req.Email, "ForgotPassword", "Failed to reset password", err)
		return
	}

	utils.PrintLogInfo(&req.Email, 200, "ForgotPassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successfully",
	})
}
