package main

import (
	_ "revenda_xpto/docs"
	"revenda_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Revenda XPTO Admin Console API
// @version         1.0
// @description     Back office console for the vehicle resale platform. Orchestrates the vehicle catalog and sales services.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
