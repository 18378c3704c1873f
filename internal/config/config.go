package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageSQL   = "sql"
	StorageFile  = "file"
	StorageRedis = "redis"
	StorageS3    = "s3"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	Timezone   string

	ShopName  string
	StaffID   int64
	StaffName string

	StorageBackend string
	DataDir        string

	DBDriver string
	DBUrl    string

	RedisAddr string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	ReminderLeadMinutes int
	Debug               bool
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		Timezone:   getEnv("TIMEZONE", "Europe/Istanbul"),

		ShopName:  getEnv("SHOP_NAME", "Garage"),
		StaffName: getEnv("STAFF_NAME", "Operator"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageSQL)),
		DataDir:        getEnv("DATA_DIR", "./data"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBUrl:    getEnv("DATABASE_URL", "./data/garage.db"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),

		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),

		Debug: os.Getenv("DEBUG") == "true",
	}

	staffID, err := strconv.ParseInt(getEnv("STAFF_ID", "1"), 10, 64)
	if err != nil || staffID <= 0 {
		return nil, fmt.Errorf("invalid STAFF_ID: %q", os.Getenv("STAFF_ID"))
	}
	cfg.StaffID = staffID

	lead, err := strconv.Atoi(getEnv("REMINDER_LEAD_MINUTES", "60"))
	if err != nil || lead < 0 {
		return nil, fmt.Errorf("invalid REMINDER_LEAD_MINUTES: %q", os.Getenv("REMINDER_LEAD_MINUTES"))
	}
	cfg.ReminderLeadMinutes = lead

	switch cfg.StorageBackend {
	case StorageSQL, StorageFile, StorageRedis:
	case StorageS3:
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("S3_BUCKET is required when STORAGE_BACKEND=s3")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND: %s", cfg.StorageBackend)
	}

	if cfg.DBDriver != "sqlite" && cfg.DBDriver != "postgres" {
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
