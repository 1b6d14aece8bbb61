package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/dashapp/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// expressed in minutes so config files stay readable.
type jsonConfig struct {
	EndpointAddr             string `json:"address"`
	DatabaseDSN              string `json:"database_dsn"`
	SecretKey                string `json:"secret_key"`
	AccessTokenExpireMinutes int    `json:"access_token_expire_minutes"`
	BaseURL                  string `json:"base_url"`
	UploadDir                string `json:"upload_dir"`
	S3AccessKey              string `json:"s3_access_key"`
	S3SecretKey              string `json:"s3_secret_key"`
	S3Bucket                 string `json:"s3_bucket"`
	S3Region                 string `json:"s3_region"`
	S3BaseEndpoint           string `json:"s3_endpoint"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag. Absent file path means no overlay. Empty fields in
// the file leave the current value untouched.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.EndpointAddr != "" {
		cfg.EndpointAddr = jc.EndpointAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.AccessTokenExpireMinutes > 0 {
		cfg.AccessTokenValidityDuration = time.Duration(jc.AccessTokenExpireMinutes) * time.Minute
	}
	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.UploadDir != "" {
		cfg.UploadDir = jc.UploadDir
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
}
