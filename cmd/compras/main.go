package main

import (
	"os"

	"gestao_compras/cmd/compras/commands"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// Errors are already printed in colour by the commands.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
