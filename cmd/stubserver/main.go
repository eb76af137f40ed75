package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"partner-dashboard/internal/stub"
)

func main() {
	port := flag.String("port", envOr("PORT", "3000"), "Port to listen on")
	email := flag.String("email", envOr("STUB_EMAIL", "partner@example.com"), "Fixture partner email")
	password := flag.String("password", envOr("STUB_PASSWORD", "vendtokens1"), "Fixture partner password")
	secret := flag.String("jwt-secret", envOr("STUB_JWT_SECRET", "stub-dev-secret"), "JWT signing secret")
	ttl := flag.Duration("token-ttl", time.Hour, "Lifetime of issued bearer tokens")
	flag.Parse()

	s, err := stub.New(stub.Config{
		Email:     *email,
		Password:  *password,
		JWTSecret: *secret,
		TokenTTL:  *ttl,
	})
	if err != nil {
		log.Fatalf("Failed to build stub server: %v", err)
	}

	log.Printf("Partner API stub listening on :%s (login: %s / %s)", *port, *email, *password)
	if err := http.ListenAndServe(":"+*port, s.Handler()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
