package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahassan/unisync/internal/app/auth"
	"github.com/ahassan/unisync/internal/app/models/dto"
	"github.com/ahassan/unisync/internal/middleware"
)

// AuthController handles sign-up, sign-in and sign-out.
type AuthController struct {
	authService *auth.Service
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *auth.Service) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles sign-up and signs the new principal in.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, expiresIn, err := c.authService.Register(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}))
}

// Login handles sign-in.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	token, expiresIn, err := c.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}))
}

// Logout clears the session.
func (c *AuthController) Logout(ctx *gin.Context) {
	c.authService.Logout()
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"message": "logged out"}))
}
