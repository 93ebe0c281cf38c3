package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	SessionSecret string
	SessionTTL    string
	SessionStore  string // memory|postgres
	CookieName    string

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	AppURL      string
	StaticDir   string
	UploadDir   string
	CORSOrigins []string
	// TrustedProxies lists proxy addresses or CIDRs whose forwarding headers
	// identify the client.
	TrustedProxies []string

	EmailDomain      string
	BcryptCost       int
	PasswordResetTTL string

	NotifyWorkers     int
	NotifyQueueSize   int
	NotifyMaxAttempts int
	NotifyBackoff     string
}

// LoadConfig loads .env, reads the environment and applies defaults.
// It does not log so that the logger can be configured from its result.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "3000"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    def(os.Getenv("DB_NAME"), "achados_perdidos"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    def(os.Getenv("SESSION_TTL"), "24h"),
		SessionStore:  strings.ToLower(def(os.Getenv("SESSION_STORE"), "memory")),
		CookieName:    def(os.Getenv("SESSION_COOKIE"), "lf_session"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     def(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     def(os.Getenv("MAIL_FROM"), os.Getenv("SMTP_USER")),

		AppURL:      strings.TrimRight(def(os.Getenv("APP_URL"), "http://localhost:3000"), "/"),
		StaticDir:   def(os.Getenv("STATIC_DIR"), "public"),
		UploadDir:   def(os.Getenv("UPLOAD_DIR"), "public/uploads"),
		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),

		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),

		EmailDomain:      strings.ToLower(def(os.Getenv("INSTITUTIONAL_EMAIL_DOMAIN"), "senaimgaluno.com.br")),
		BcryptCost:       atoiDef(os.Getenv("BCRYPT_COST"), 10),
		PasswordResetTTL: def(os.Getenv("PASSWORD_RESET_TTL"), "1h"),

		NotifyWorkers:     atoiDef(os.Getenv("NOTIFY_WORKERS"), 3),
		NotifyQueueSize:   atoiDef(os.Getenv("NOTIFY_QUEUE_SIZE"), 100),
		NotifyMaxAttempts: atoiDef(os.Getenv("NOTIFY_MAX_ATTEMPTS"), 5),
		NotifyBackoff:     def(os.Getenv("NOTIFY_BACKOFF"), "2s"),
	}

	for _, d := range []struct{ name, value string }{
		{"SESSION_TTL", cfg.SessionTTL},
		{"PASSWORD_RESET_TTL", cfg.PasswordResetTTL},
		{"NOTIFY_BACKOFF", cfg.NotifyBackoff},
	} {
		if _, err := time.ParseDuration(d.value); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", d.name, d.value, err)
		}
	}

	return cfg, nil
}

// Validate returns warnings and a fatal error if the config cannot run the server.
func (c *Config) Validate() (warnings []string, err error) {
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	if strings.TrimSpace(c.SessionSecret) == "" {
		if c.IsProd() {
			return nil, fmt.Errorf("SESSION_SECRET is required in production")
		}
		warnings = append(warnings, "SESSION_SECRET is empty, using an insecure development secret")
		c.SessionSecret = "dev-insecure-session-secret"
	}

	if c.SessionStore != "memory" && c.SessionStore != "postgres" {
		return nil, fmt.Errorf("SESSION_STORE must be memory or postgres, got %q", c.SessionStore)
	}

	if c.SMTPHost == "" {
		warnings = append(warnings, "SMTP is not configured, emails will fail and be dead-lettered")
	}

	if c.NotifyWorkers < 1 {
		warnings = append(warnings, "NOTIFY_WORKERS < 1, using 1")
		c.NotifyWorkers = 1
	}

	return warnings, nil
}

func (c *Config) IsProd() bool { return c.Env == "prod" || c.Env == "production" }

// SessionLifetime is the absolute lifetime of a login session.
func (c *Config) SessionLifetime() time.Duration { return mustDuration(c.SessionTTL) }

func (c *Config) ResetTokenLifetime() time.Duration { return mustDuration(c.PasswordResetTTL) }

func (c *Config) NotifyRetryBackoff() time.Duration { return mustDuration(c.NotifyBackoff) }

// GetDSN returns the full DSN including the password.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe returns the DSN with the password masked, for logs.
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func atoiDef(v string, d int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return d
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
