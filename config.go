package main

import (
	"log"
	"os"
	"strconv"
)

// serverConfig is read from the environment. A .env file in the working
// directory is loaded first by godotenv/autoload.
type serverConfig struct {
	Port           string
	DataDir        string
	DBPath         string
	StaticDir      string
	TimelineConfig string
	CVFilename     string
	RetentionDays  int

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string
}

func loadServerConfig() serverConfig {
	cfg := serverConfig{
		Port:           getenv("PORT", "8000"),
		DataDir:        getenv("DATA_DIR", "./data"),
		DBPath:         getenv("DB_PATH", "./site.db"),
		StaticDir:      getenv("STATIC_DIR", "./frontend/dist"),
		TimelineConfig: os.Getenv("TIMELINE_CONFIG"),
		CVFilename:     getenv("CV_FILENAME", "CV.pdf"),
		RetentionDays:  365,

		SMTPHost: getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: getenv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		ToEmail:  os.Getenv("TO_EMAIL"),
	}

	if v := os.Getenv("VISITOR_RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil || days <= 0 {
			log.Printf("Ignoring invalid VISITOR_RETENTION_DAYS %q", v)
		} else {
			cfg.RetentionDays = days
		}
	}

	if cfg.ToEmail == "" {
		cfg.ToEmail = cfg.SMTPUser
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
