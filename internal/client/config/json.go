package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/dashapp/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is expressed in seconds so config files stay readable.
type jsonConfig struct {
	ServerEndpointURL     string `json:"server_endpoint_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	DataFile              string `json:"data_file"`
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

	if jc.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = jc.ServerEndpointURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
}
