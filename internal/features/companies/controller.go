package companies

import (
	"net/http"

	"fieldtrack/internal/apperrors"
	users_middleware "fieldtrack/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CompanyController struct {
	companyService *CompanyService
}

func (c *CompanyController) RegisterRoutes(router *gin.RouterGroup) {
	companyRoutes := router.Group("/companies")

	companyRoutes.POST("", c.CreateCompany)
	companyRoutes.GET("/me", c.GetOwnCompany)
	companyRoutes.GET("/:companyId", c.GetCompany)
}

// CreateCompany
// @Summary Create a company and attach the current user to it
// @Tags companies
// @Security BearerAuth
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	request := &CreateCompanyRequestDTO{}
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	company, err := c.companyService.CreateCompany(request, user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, company)
}

// GetOwnCompany
// @Summary Get the current user's company
// @Tags companies
// @Security BearerAuth
// @Router /companies/me [get]
func (c *CompanyController) GetOwnCompany(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	company, err := c.companyService.GetOwnCompany(user)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, company)
}

// GetCompany
// @Summary Get a company by id
// @Tags companies
// @Security BearerAuth
// @Router /companies/{companyId} [get]
func (c *CompanyController) GetCompany(ctx *gin.Context) {
	companyID, err := uuid.Parse(ctx.Param("companyId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID"})
		return
	}

	company, err := c.companyService.GetCompanyByID(companyID)
	if err != nil {
		ctx.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, company)
}
