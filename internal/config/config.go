package config

import (
	"log"
	"net/http"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicBaseURL   string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether Google sign-in has been configured.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

type Config struct {
	DB_URL      string
	Port        string
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	Environment string
	LogLevel    string

	// PublicBaseURL prefixes every URL handed back to clients.
	PublicBaseURL      string
	UploadDir          string
	AssetsDir          string
	MaxUploadBytes     int64
	UploadRequiresAuth bool
	ImageStore         string

	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration

	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Only safe behind a proxy that overwrites them.
	TrustProxyHeaders bool

	CorsConfig cors.Options
	R2         R2Config
	Google     GoogleConfig
}

// IsProduction reports whether ENV is set to production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// PlaceholderImageURL is substituted for stories saved without an image.
func (c Config) PlaceholderImageURL() string {
	return strings.TrimRight(c.PublicBaseURL, "/") + "/assets/placeholder.png"
}

// Load reads ENV_FILE (default .env) into the process environment and
// builds a Config from it, falling back to defaults for unset keys.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found, using process environment")
	}

	port := getEnv("PORT", "8000")
	return Config{
		DB_URL:             getEnv("DB_URL", ""),
		Port:               port,
		JWTSecret:          getEnv("JWT_SECRET", "not-so-secret-now-is-it?"),
		TokenTTL:           getDuration("TOKEN_TTL", 72*time.Hour),
		BcryptCost:         getInt("BCRYPT_COST", 10),
		Environment:        getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:"+port),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		AssetsDir:          getEnv("ASSETS_DIR", "assets"),
		MaxUploadBytes:     int64(getInt("MAX_UPLOAD_BYTES", 10<<20)),
		UploadRequiresAuth: getBool("UPLOAD_REQUIRES_AUTH", true),
		ImageStore:         getEnv("IMAGE_STORE", "local"),
		RateLimitRPS:       getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:     getInt("RATE_LIMIT_BURST", 10),
		ShutdownTimeout:    getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		CorsConfig:         CorsConfig(getList("CORS_ORIGINS", []string{"http://localhost:5173"})),
		TrustProxyHeaders:  getBool("TRUST_PROXY_HEADERS", false),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			PublicBaseURL:   getEnv("R2_PUBLIC_BASE_URL", ""),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:"+port+"/auth/google/callback"),
		},
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// CorsConfig allows credentials only for an explicit origin list; a
// wildcard origin gets plain CORS.
func CorsConfig(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: !slices.Contains(origins, "*"),
	}
}
