package projects_controllers

import (
	"net/http"

	"fieldtrack/internal/apperrors"
	projects_dto "fieldtrack/internal/features/projects/dto"
	projects_services "fieldtrack/internal/features/projects/services"
	users_middleware "fieldtrack/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type MemberController struct {
	memberService *projects_services.MemberService
}

func (c *MemberController) RegisterRoutes(router *gin.RouterGroup) {
	memberRoutes := router.Group("/projects/:projectId/members")

	memberRoutes.GET("", c.GetMembers)
	memberRoutes.POST("", c.AddMember)
	memberRoutes.DELETE("/:userId", c.RemoveMember)
}

// GetMembers
// @Summary List members of a project
// @Tags project-members
// @Security BearerAuth
// @Router /projects/{projectId}/members [get]
func (c *MemberController) GetMembers(ctx *gin.Context) {
	members, err := c.memberService.GetMembers(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// AddMember
// @Summary Add a member to a project (manager or admin)
// @Tags project-members
// @Security BearerAuth
// @Router /projects/{projectId}/members [post]
func (c *MemberController) AddMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	request := &projects_dto.AddProjectMemberRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := c.memberService.AddMember(ctx.Param("projectId"), request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// RemoveMember
// @Summary Remove a member from a project (manager or admin)
// @Tags project-members
// @Security BearerAuth
// @Router /projects/{projectId}/members/{userId} [delete]
func (c *MemberController) RemoveMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	err := c.memberService.RemoveMember(ctx.Param("projectId"), ctx.Param("userId"), user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
