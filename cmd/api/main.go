package main

import (
	_ "maison_brioche/docs"
	"maison_brioche/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Maison Brioche Reservations API
// @version         1.0
// @description     Bakery reservations, quotes and payment reconciliation backed by DynamoDB.
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
