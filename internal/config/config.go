package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	DSN      string        `yaml:"dsn" env:"DSN" env-required:"true"`
	TokenTTL time.Duration `yaml:"token_ttl" env-default:"12h"`
	HTTP     HTTPConfig    `yaml:"http"`
	Redis    RedisConfig   `yaml:"redis"`
	Admin    AdminConfig   `yaml:"admin"`
	Mailer   MailerConfig  `yaml:"mailer"`
	Cache    CacheConfig   `yaml:"cache"`
}

type HTTPConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"8080"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env-default:"0"`
	DedupTTL time.Duration `yaml:"dedup_ttl" env-default:"24h"`
}

type AdminConfig struct {
	// bcrypt hash of the operator password; never the plain value
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	TokenSecret  string `yaml:"token_secret" env:"ADMIN_TOKEN_SECRET" env-required:"true"`
	SessionKey   string `yaml:"session_key" env:"SESSION_KEY" env-default:"eventcraft-session"`
}

type MailerConfig struct {
	APIKey              string        `yaml:"api_key" env:"MAILER_API_KEY" env-required:"true"`
	BaseURL             string        `yaml:"base_url" env-default:"https://api.resend.com"`
	From                string        `yaml:"from" env:"MAILER_FROM" env-required:"true"`
	OperatorEmail       string        `yaml:"operator_email" env:"OPERATOR_EMAIL" env-required:"true"`
	CustomerSendEnabled bool          `yaml:"customer_send_enabled" env-default:"true"`
	Timeout             time.Duration `yaml:"timeout" env-default:"10s"`
}

type CacheConfig struct {
	ProjectTTL time.Duration `yaml:"project_ttl" env-default:"30s"`
}

// MustLoad panics on missing or incomplete configuration: the service must
// not serve traffic half-configured.
func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	return &cfg
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
