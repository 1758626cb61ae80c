package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	MongoURI string
	MongoDB  string

	RedisAddr     string
	RedisPassword string

	HDFSNamenode string
	MediaBaseURL string

	JWTSecret string

	StripeKey      string
	RazorpayKeyID  string
	RazorpaySecret string
	PayPalClientID string
	PayPalSecret   string
	PayPalSandbox  bool

	ArtistImageFolder string
	LogFilePath       string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://mongodb:27017"),
		MongoDB:           getEnv("MONGO_DATABASE", "streaming_db"),
		RedisAddr:         getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		HDFSNamenode:      getEnv("HDFS_NAMENODE", "namenode:8020"),
		MediaBaseURL:      getEnv("MEDIA_BASE_URL", "http://localhost:8080/media"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		StripeKey:         getEnv("STRIPE_SECRET_KEY", ""),
		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpaySecret:    getEnv("RAZORPAY_KEY_SECRET", ""),
		PayPalClientID:    getEnv("PAYPAL_CLIENT_ID", ""),
		PayPalSecret:      getEnv("PAYPAL_CLIENT_SECRET", ""),
		PayPalSandbox:     getEnv("PAYPAL_ENV", "sandbox") != "live",
		ArtistImageFolder: getEnv("ARTIST_IMAGE_FOLDER", "artists"),
		LogFilePath:       getEnv("LOG_FILE_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
