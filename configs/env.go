package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file when one exists. Missing files are fine in
// deployed environments where variables come from the process environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

func EnvMongoURI() string {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017/ud_cloth"
	}
	return uri
}

// EnvJWTSecret refuses to start without a signing secret. There is no
// fallback value: a process signing tokens with a known default would
// accept forged tokens.
func EnvJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	return secret
}

func EnvPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	return port
}

func EnvBaseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:" + EnvPort()
	}
	return base
}

func EnvSMTPHost() string { return os.Getenv("SMTP_HOST") }
func EnvSMTPPort() string { return os.Getenv("SMTP_PORT") }
func EnvSMTPUser() string { return os.Getenv("SMTP_USER") }
func EnvSMTPPass() string { return os.Getenv("SMTP_PASS") }
func EnvSMTPFrom() string { return os.Getenv("SMTP_FROM") }

// EnvContactEmail is the inbox notified on contact form submissions.
func EnvContactEmail() string { return os.Getenv("CONTACT_EMAIL") }
