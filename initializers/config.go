package initializers

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the process reads from the environment. It is
// loaded once at startup so handlers and the bot never reach for os.Getenv
// themselves.
type Config struct {
	Port        string
	DatabaseDSN string

	JWTSecret      string
	JWTExpireHours int

	BotToken     string
	SuperAdminID int64

	CodeLength        int
	CodeExpireMinutes int

	UploadDir   string
	MaxFileSize int64

	BroadcastDelay time.Duration

	UserbotGatewayURL string

	// DevMode echoes verification codes in API responses instead of
	// requiring a working delivery channel.
	DevMode bool
}

var Cfg *Config

func LoadConfig() *Config {
	Cfg = &Config{
		Port:              getEnv("PORT", "8000"),
		DatabaseDSN:       getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=zarbdor port=5432 sslmode=disable TimeZone=UTC"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTExpireHours:    getEnvAsInt("JWT_EXPIRE_HOURS", 720),
		BotToken:          getEnv("BOT_TOKEN", ""),
		SuperAdminID:      getEnvAsInt64("SUPER_ADMIN_ID", 0),
		CodeLength:        getEnvAsInt("CODE_LENGTH", 6),
		CodeExpireMinutes: getEnvAsInt("CODE_EXPIRE_MINUTES", 5),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize:       getEnvAsInt64("MAX_FILE_SIZE", 5*1024*1024),
		BroadcastDelay:    time.Duration(getEnvAsInt("BROADCAST_DELAY_MS", 50)) * time.Millisecond,
		UserbotGatewayURL: getEnv("USERBOT_GATEWAY_URL", ""),
		DevMode:           getEnv("APP_ENV", "development") != "production",
	}
	return Cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
