package main

import (
	"github.com/CPU-commits/LMS_Backend/server"
)

// @title          LMS API
// @version        1.0
// @description    API server for the learning management platform
// @termsOfService http://swagger.io/terms/

// @contact.name  API Support
// @contact.url   http://www.swagger.io/support
// @contact.email support@swagger.io

// lincense.name  Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @tag.name        courses
// @tag.description Course catalog and enrollment

// @tag.name        progress
// @tag.description Per student completion tracking

// @tag.name        analytics
// @tag.description Admin aggregate figures

// @host     localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
// @description                BearerJWTToken in Authorization Header

// @accept  json
// @produce json
func main() {
	server.Init()
}
