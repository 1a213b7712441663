package testutils

import (
	"github.com/gin-gonic/gin"

	"github.com/readysethire/readysethire/internal/api/routes"
	"github.com/readysethire/readysethire/internal/application"
)

func SetupRouter(services *application.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, services, nil)
	return r
}
