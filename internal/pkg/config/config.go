package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (business constants, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Mail    MailConfig
	Invoice InvoiceConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type MailConfig struct {
	Enabled     bool   `envconfig:"MAIL_ENABLED" default:"false"`
	Host        string `envconfig:"MAIL_HOST" default:"localhost"`
	Port        int    `envconfig:"MAIL_PORT" default:"465"`
	Username    string `envconfig:"MAIL_USERNAME" default:""`
	Password    string `envconfig:"MAIL_PASSWORD" default:""`
	FromName    string `envconfig:"MAIL_FROM_NAME" default:"Pawbook"`
	FromAddress string `envconfig:"MAIL_FROM_ADDRESS" default:"hello@example.com"`
}

// InvoiceConfig carries the billing business constants: reference prefix,
// payment grace period, and the fixed row budget per PDF page.
type InvoiceConfig struct {
	ReferencePrefix   string `envconfig:"INVOICE_REFERENCE_PREFIX" default:"W4LKIES"`
	DueInDays         int    `envconfig:"INVOICE_DUE_IN_DAYS" default:"7"`
	PDFRowsPerPage    int    `envconfig:"INVOICE_PDF_ROWS_PER_PAGE" default:"21"`
	CurrencySymbol    string `envconfig:"INVOICE_CURRENCY_SYMBOL" default:"£"`
	CompanyName       string `envconfig:"INVOICE_COMPANY_NAME" default:"w4lkies"`
	CompanyURL        string `envconfig:"INVOICE_COMPANY_URL" default:"https://w4lkies.com"`
	SupportEmail      string `envconfig:"INVOICE_SUPPORT_EMAIL" default:"hello@w4lkies.com"`
	LogoPath          string `envconfig:"INVOICE_LOGO_PATH" default:""`
	BankAccountName   string `envconfig:"INVOICE_BANK_ACCOUNT_NAME" default:""`
	BankSortCode      string `envconfig:"INVOICE_BANK_SORT_CODE" default:""`
	BankAccountNumber string `envconfig:"INVOICE_BANK_ACCOUNT_NUMBER" default:""`
	PayPalNote        string `envconfig:"INVOICE_PAYPAL_NOTE" default:"request an invoice; a 7% fee is added to the total"`
	BitcoinAddress    string `envconfig:"INVOICE_BITCOIN_ADDRESS" default:""`
	AcceptsCash       bool   `envconfig:"INVOICE_ACCEPTS_CASH" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/London",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Invoice: InvoiceConfig{
			ReferencePrefix: "W4LKIES",
			DueInDays:       7,
			PDFRowsPerPage:  21,
			CurrencySymbol:  "£",
			CompanyName:     "w4lkies",
			CompanyURL:      "https://w4lkies.com",
			SupportEmail:    "hello@w4lkies.com",
		},
	}
}
