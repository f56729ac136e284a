package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	JWTSecret  string
	TokenTTL   time.Duration
	AppAuthKey string
	AppEncKey  string

	APIBaseURL        string
	HTTPClientTimeout time.Duration

	Limits OrderLimits

	APP_ENV string
}

// OrderLimits are the business-configured bounds on an order. The
// defaults mirror what the sales team works with today; they are env
// keys rather than constants because nobody has documented a rationale
// for the exact numbers.
type OrderLimits struct {
	MaxItems     int
	MaxQuantity  int
	MaxUnitPrice int64
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found ")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       getEnv("APP_PORT", ":3000"),

		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   getEnvDuration("TOKEN_TTL", 72*time.Hour),
		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),

		APIBaseURL:        getEnv("API_BASE_URL", "http://localhost:3000/api"),
		HTTPClientTimeout: getEnvDuration("HTTP_CLIENT_TIMEOUT", 15*time.Second),

		Limits: OrderLimits{
			MaxItems:     getEnvInt("ORDER_MAX_ITEMS", 50),
			MaxQuantity:  getEnvInt("ORDER_MAX_QUANTITY", 999),
			MaxUnitPrice: int64(getEnvInt("ORDER_MAX_UNIT_PRICE", 999999)),
		},

		APP_ENV: os.Getenv("APP_ENV"),
	}

}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}

var LoadENV = LoadEnv()
