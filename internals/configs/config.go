package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	GoogleClientID string
	AuthDevBypass  bool
	ServiceName    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	AuthDevBypass = GetEnvBool("AUTH_DEV_BYPASS", false)
	ServiceName = GetEnv("SERVICE_NAME", "kidride-backend")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET not set!")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}

	if GoogleClientID == "" {
		// Not fatal: the service keeps running without verified-auth capability.
		log.Println("⚠️ GOOGLE_CLIENT_ID not set; Google ID-token verification disabled")
	} else {
		log.Println("✅ GOOGLE_CLIENT_ID loaded.")
	}

	if AuthDevBypass {
		log.Println("⚠️ AUTH_DEV_BYPASS active — all requests run as the dev identity")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return def
	}
	return v == "true" || v == "1" || v == "yes"
}

func GetEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

// CORSAllowOrigins: comma separated origins, "*" by default.
func CORSAllowOrigins() string {
	raw := GetEnv("CORS_ALLOW_ORIGINS", "*")
	parts := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "*"
	}
	return strings.Join(parts, ", ")
}
