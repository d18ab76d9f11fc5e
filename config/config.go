package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// New snapshots the process environment. Call it after godotenv has loaded
// any .env file.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// GetBool accepts the forms strconv.ParseBool does ("1", "true", "FALSE", ...).
func GetBool(config map[string]string, key string, defaultValue bool) bool {
	s, ok := lookup(config, key)
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}

	return asBool
}

// GetDuration reads a Go duration string ("5m", "90s"). A bare integer is
// taken as seconds.
func GetDuration(config map[string]string, key string, defaultValue time.Duration) time.Duration {
	s, ok := lookup(config, key)
	if !ok {
		return defaultValue
	}

	if secs, err := strconv.Atoi(s); err == nil {
		if secs < 0 {
			return defaultValue
		}
		return time.Duration(secs) * time.Second
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return defaultValue
	}

	return d
}

// GetList splits a comma separated value, dropping blank entries.
func GetList(config map[string]string, key string, defaultValue []string) []string {
	s, ok := lookup(config, key)
	if !ok {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}

	return items
}

func lookup(config map[string]string, key string) (string, bool) {
	if config == nil {
		return "", false
	}
	s, ok := config[key]
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return strings.TrimSpace(s), true
}
