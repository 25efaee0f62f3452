package main

import "github.com/SscSPs/money_counter/internal/cli"

// @title Money Counter API
// @version 1.0
// @description Spells ruble amounts and counts in Russian words and checks purchases against a budget.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cli.Execute()
}
