package users_controllers

import (
	"net/http"

	"fieldtrack/internal/apperrors"
	users_dto "fieldtrack/internal/features/users/dto"
	users_middleware "fieldtrack/internal/features/users/middleware"
	users_services "fieldtrack/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserController struct {
	userService *users_services.UserService
}

func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	authRoutes := router.Group("/auth")

	authRoutes.POST("/signup", c.SignUp)
	authRoutes.POST("/signin", c.SignIn)
}

func (c *UserController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/profiles/me", c.GetProfile)
	router.PUT("/users/:userId/role", c.ChangeUserRole)
}

// SignUp
// @Summary Register a new user
// @Tags auth
// @Router /auth/signup [post]
func (c *UserController) SignUp(ctx *gin.Context) {
	request := &users_dto.SignUpRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.userService.SignUp(request); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}

// SignIn
// @Summary Exchange credentials for an access token
// @Tags auth
// @Router /auth/signin [post]
func (c *UserController) SignIn(ctx *gin.Context) {
	request := &users_dto.SignInRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.userService.SignIn(request)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProfile
// @Summary Get the authenticated user's profile
// @Tags profiles
// @Security BearerAuth
// @Router /profiles/me [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	ctx.JSON(http.StatusOK, &users_dto.ProfileResponseDTO{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CompanyID: user.CompanyID,
	})
}

// ChangeUserRole
// @Summary Change a user's global role (admin only)
// @Tags users
// @Security BearerAuth
// @Router /users/{userId}/role [put]
func (c *UserController) ChangeUserRole(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	request := &users_dto.ChangeUserRoleRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.userService.ChangeUserRole(targetUserID, request.Role, user); err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
