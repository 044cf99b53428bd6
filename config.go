//go:build !alphablend_noos

package alphablend

import (
	"os"
	"strconv"
)

const noOS = false

// runtimeConfig holds the environment overrides, read once at init.
type runtimeConfig struct {
	noFastPath bool
	workers    int
}

var config = loadConfig(os.Getenv)

// loadConfig reads ALPHABLEND_NO_FASTPATH and ALPHABLEND_WORKERS through
// getenv. Unparsable values are ignored.
func loadConfig(getenv func(string) string) runtimeConfig {
	cfg := runtimeConfig{workers: 1}
	if v := getenv("ALPHABLEND_NO_FASTPATH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.noFastPath = b
		}
	}
	if v := getenv("ALPHABLEND_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.workers = n
		}
	}
	return cfg
}
