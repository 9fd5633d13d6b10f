package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Auth struct {
		// Verifier selects the credential comparison strategy:
		// "bcrypt" (default) or "plaintext". Plaintext exists only for
		// parity with legacy data and is a known security defect;
		// see DESIGN.md.
		Verifier string `yaml:"verifier"`
	} `yaml:"auth"`

	// Bootstrap admin, get-or-created at startup by reserved email.
	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminName     string `yaml:"first_admin_name"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, unless DATABASE_URL is set in the
// environment, in which case the environment wins (test mode).
// A .env file is honored when present.
func LoadConfig() {
	var cfg Config

	// Optional .env; absence is not an error.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment variables (test mode)")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	cfg.Auth.Verifier = os.Getenv("AUTH_VERIFIER")
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminName = os.Getenv("FIRST_ADMIN_NAME")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Auth.Verifier == "" {
		cfg.Auth.Verifier = "bcrypt"
	}
	if cfg.FirstAdminEmail == "" {
		// Reserved bootstrap address; registration never produces it.
		cfg.FirstAdminEmail = "admin@system.local"
	}
	if cfg.FirstAdminName == "" {
		cfg.FirstAdminName = "Admin"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
