package config

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SMTPConfig holds the outbound mail relay settings.
type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Secure   bool   `json:"secure"` // implicit TLS
	User     string `json:"user"`
	Password string `json:"password"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type Config struct {
	Port                string     `json:"port"`
	Env                 string     `json:"env"` // "dev" | "prod"
	LogLevel            string     `json:"log_level"`
	FrontendURLs        []string   `json:"frontend_urls"`
	MaxRequestBodyBytes int64      `json:"max_request_body_bytes"`
	SMTP                SMTPConfig `json:"smtp"`
}

const (
	DefaultSMTPPort            = 465
	DefaultMaxRequestBodyBytes = 64 << 10
)

// LoadConfig merges defaults, environment (including a local .env file) and
// explicitly set flags, in increasing order of precedence.
func LoadConfig(args []string) (*Config, error) {
	// Only effective locally; in production the file is usually absent.
	_ = godotenv.Load()

	fs := pflag.NewFlagSet("api", pflag.ContinueOnError)
	fs.String("port", "8080", "HTTP listen port")
	fs.String("env", "dev", `Runtime environment "dev"|"prod"`)
	fs.String("log_level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: parse flags: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("frontend_url", "http://localhost:3000")
	v.SetDefault("max_request_body_bytes", DefaultMaxRequestBodyBytes)
	v.SetDefault("smtp_port", strconv.Itoa(DefaultSMTPPort))
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("config: bind flags: %w", err)
	}

	smtpPort, err := strconv.Atoi(strings.TrimSpace(v.GetString("smtp_port")))
	if err != nil || smtpPort <= 0 {
		return nil, fmt.Errorf("config: invalid SMTP_PORT %q", v.GetString("smtp_port"))
	}

	cfg := &Config{
		Port:                v.GetString("port"),
		Env:                 strings.ToLower(v.GetString("env")),
		LogLevel:            v.GetString("log_level"),
		FrontendURLs:        splitList(v.GetString("frontend_url")),
		MaxRequestBodyBytes: v.GetInt64("max_request_body_bytes"),
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp_host"),
			Port:     smtpPort,
			Secure:   v.GetString("smtp_secure") == "true",
			User:     v.GetString("smtp_user"),
			Password: v.GetString("smtp_password"),
			From:     v.GetString("smtp_from"),
			To:       v.GetString("smtp_to"),
		},
	}

	if cfg.MaxRequestBodyBytes <= 0 {
		cfg.MaxRequestBodyBytes = DefaultMaxRequestBodyBytes
	}

	if cfg.SMTP.Host == "" || cfg.SMTP.To == "" {
		log.Println("WARNING: SMTP_HOST or SMTP_TO is missing. Submissions will fail to deliver.")
	}

	return cfg, nil
}

// Dump returns an indented JSON rendering of the config with secrets masked.
func (c Config) Dump() string {
	cp := c
	if cp.SMTP.Password != "" {
		cp.SMTP.Password = "********"
	}
	b, _ := json.MarshalIndent(cp, "", "  ")
	return string(b)
}

// splitList turns a comma separated value into trimmed, non-empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimRight(strings.TrimSpace(part), "/")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
