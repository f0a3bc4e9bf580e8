package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Bootstrap admin account, created at startup if absent.
	AdminEmail    string
	AdminPassword string

	// External integrations. Passed explicitly into the FreshBooks and
	// updown clients so tests can supply fake credentials.
	FreshbooksClientID     string `mapstructure:"FRESHBOOKS_CLIENT_ID"`
	FreshbooksClientSecret string `mapstructure:"FRESHBOOKS_CLIENT_SECRET"`
	FreshbooksRedirectURI  string `mapstructure:"FRESHBOOKS_REDIRECT_URI"`
	UpdownAPIKey           string `mapstructure:"UPDOWN_API_KEY"`

	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "dashboard-backend")
	viper.SetDefault("ADMIN_EMAIL", "admin@dekinnovations.com")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("FRESHBOOKS_CLIENT_ID", "")
	viper.SetDefault("FRESHBOOKS_CLIENT_SECRET", "")
	viper.SetDefault("FRESHBOOKS_REDIRECT_URI", "")
	viper.SetDefault("UPDOWN_API_KEY", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminEmail = viper.GetString("ADMIN_EMAIL")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")

	cfg.FreshbooksClientID = viper.GetString("FRESHBOOKS_CLIENT_ID")
	cfg.FreshbooksClientSecret = viper.GetString("FRESHBOOKS_CLIENT_SECRET")
	cfg.FreshbooksRedirectURI = viper.GetString("FRESHBOOKS_REDIRECT_URI")
	if cfg.FreshbooksClientID == "" || cfg.FreshbooksClientSecret == "" || cfg.FreshbooksRedirectURI == "" {
		log.Println("Warning: FreshBooks OAuth credentials not fully set. The FreshBooks integration will report itself as not configured.")
	}

	cfg.UpdownAPIKey = viper.GetString("UPDOWN_API_KEY")
	if cfg.UpdownAPIKey == "" {
		log.Println("Warning: UPDOWN_API_KEY not set. Website checks fall back to plain HTTP pings.")
	}

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}
