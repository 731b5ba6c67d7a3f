// Command issue-token prints a bearer token for a user id, signed with the
// secret from the service config. It stands in for the identity provider in
// local development.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/vadimbarashkov/bookmarker/internal/auth"
	"github.com/vadimbarashkov/bookmarker/internal/config"
)

func main() {
	userID := flag.String("user", "", "user id to put in the token subject")
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the service config")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal(err)
	}

	token, err := tokens.Sign(*userID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
