package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config with values from environment variables.
// cmd/server loads a .env file (if present) before this runs, so both real
// environment variables and .env entries land here.
//
// Recognized variables:
//
//	ADDRESS                      bind address
//	DATABASE_DSN                 PostgreSQL DSN
//	SECRET_KEY                   JWT signing secret
//	ACCESS_TOKEN_EXPIRE_MINUTES  access token lifetime, integer minutes
//	BASE_URL                     public URL for avatar links
//	UPLOAD_DIR                   local avatar directory
//	S3_ACCESS_KEY / S3_SECRET_KEY / S3_BUCKET / S3_REGION / S3_ENDPOINT
func parseEnv(cfg *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		cfg.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			cfg.AccessTokenValidityDuration = time.Duration(m) * time.Minute
		}
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		cfg.UploadDir = v
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		cfg.S3AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		cfg.S3SecretKey = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		cfg.S3Region = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		cfg.S3BaseEndpoint = v
	}
}
