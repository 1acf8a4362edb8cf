// The xmlparser command runs the standalone XML invoice parser service.
package main

import (
	"fmt"
	"log"
	"os"

	"solarops/internal/handler"
	"solarops/internal/router"
)

const defaultToken = "dev-token-12345"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	token := os.Getenv("XML_PARSER_TOKEN")
	if token == "" {
		token = defaultToken
	}
	if token == defaultToken {
		log.Printf("WARNING: using default XML_PARSER_TOKEN; set a secure token for production")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	r := router.SetupParser(token, handler.NewParserHandler())

	log.Printf("XML parser service starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
