package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string
	LogLevel       string
	JWTSecret      string

	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPass      string
	DBName      string
	DBPort      string

	RedisURL string

	MeiliSearchHost string
	MeiliMasterKey  string

	AvatarStorage         string
	AvatarsDir            string
	MaxAvatarSize         int64
	AvatarLockTTL         time.Duration
	AvatarCleanupSchedule string

	CloudinaryUploadFolder string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      os.Getenv("JWT_SECRET"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPass:      os.Getenv("DB_PASS"),
		DBName:      getEnv("DB_NAME", "school"),
		DBPort:      getEnv("DB_PORT", "5432"),

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		AvatarStorage:         getEnv("AVATAR_STORAGE", "local"),
		AvatarsDir:            getEnv("AVATARS_DIR", "avatars"),
		AvatarCleanupSchedule: getEnv("AVATAR_CLEANUP_SCHEDULE", "0 0 */12 * * *"),

		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "school_avatars"),
	}

	if cfg.AvatarStorage != "local" && cfg.AvatarStorage != "cloudinary" {
		return nil, fmt.Errorf("invalid AVATAR_STORAGE %q: expected local or cloudinary", cfg.AvatarStorage)
	}

	var err error
	cfg.AvatarLockTTL, err = time.ParseDuration(getEnv("AVATAR_LOCK_TTL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid AVATAR_LOCK_TTL: %w", err)
	}

	cfg.MaxAvatarSize, err = strconv.ParseInt(getEnv("MAX_AVATAR_SIZE", "5242880"), 10, 64)
	if err != nil || cfg.MaxAvatarSize <= 0 {
		return nil, fmt.Errorf("invalid MAX_AVATAR_SIZE: must be a positive byte count")
	}

	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
