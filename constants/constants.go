package constants

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Load pulls a .env file from the working directory into the environment,
// never overriding variables that are already set.
func Load() {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

// GetLogFile is empty unless file logging is wanted.
func GetLogFile() string {
	return os.Getenv("LOG_FILE")
}

// GetSpelling is one of "key", "sharps", "flats".
func GetSpelling() string {
	return getEnv("SPELLING", "key")
}

// GetSongsTable is the DynamoDB table for stored songs. Empty disables the store.
func GetSongsTable() string {
	return os.Getenv("SONGS_TABLE")
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMODB_ENDPOINT")
}

func GetRegion() string {
	return getEnv("AWS_REGION", "us-east-1")
}

func GetWatchDebounceMillis() int {
	return getEnvInt("WATCH_DEBOUNCE_MS", 200)
}

func GetCorsOrigins() []string {
	return strings.Split(getEnv("CORS_ORIGINS", "*"), ",")
}

// beats per chord in exported practice tracks
const BeatsPerChord = 4

const SongsKeyAttribute = "PK"
