package main

import (
	_ "seguradora_xpto/docs"
	"seguradora_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Contratacao Service API
// @version         1.0
// @description     Insurance contracting service (policies) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8081

// @BasePath  /v1

func main() {
	routes.RunContratacao()
}
