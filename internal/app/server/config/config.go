package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultUploadDir  = "uploads"
	defaultTokenTTL   = 7 * 24 * time.Hour
	defaultQuota      = 1 << 30 // 1 GiB per account
)

type Config struct {
	Env      string
	DB       db
	Server   server
	Auth     auth
	Files    files
	Identity identity
	Logger   logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type auth struct {
	Secret   string        `env:"SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL"`
}

type files struct {
	UploadDir  string `env:"UPLOAD_DIR"`
	QuotaBytes int64  `env:"QUOTA_BYTES"`
}

// identity holds the external phone-identity provider credentials.
type identity struct {
	Endpoint string `env:"IDENTITY_ENDPOINT"`
	APIKey   string `env:"IDENTITY_API_KEY"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Auth: auth{
			Secret:   viper.GetString("secret"),
			TokenTTL: viper.GetDuration("token_ttl"),
		},
		Files: files{
			UploadDir:  viper.GetString("upload_dir"),
			QuotaBytes: viper.GetInt64("quota_bytes"),
		},
		Identity: identity{
			Endpoint: viper.GetString("identity_endpoint"),
			APIKey:   viper.GetString("identity_api_key"),
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	if config.Server.RunAddress == "" {
		config.Server.RunAddress = defaultRunAddress
	}
	if config.Auth.Secret == "" {
		log.Fatalln("SECRET must be set")
	}
	if config.Auth.TokenTTL == 0 {
		config.Auth.TokenTTL = defaultTokenTTL
	}
	if config.Files.UploadDir == "" {
		config.Files.UploadDir = defaultUploadDir
	}
	if config.Files.QuotaBytes == 0 {
		config.Files.QuotaBytes = defaultQuota
	}
	if config.DB.Migrations == "" {
		config.DB.Migrations = "migrations"
	}

	return &config
}
