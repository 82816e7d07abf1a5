package core

import (
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		Host            string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	EmailConfig struct {
		From        string // e.g. "San José <noreply@colegiosanjose.edu>"
		SendgridKey string // empty: emails are printed, not sent
	}

	PaginationConfig struct {
		DefaultPageSize int
		MaxPageSize     int
	}

	Config struct {
		Env          string // DEV (local; default), TEST, QA, PROD
		Build        string
		AppName      string
		Debug        bool
		TestMode     bool
		RollbarToken string
		SeedFile     string // empty: use the embedded seed
		Server       ServerConfig
		Email        EmailConfig
		Pagination   PaginationConfig
	}
)

// NewConfig reads the configuration from the environment, after loading `config/.env.<env>` if it exists.
func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "San José")
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("seedFile", "")
	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("email.from", "San José <noreply@localhost>")
	v.SetDefault("email.sendgridKey", "")
	v.SetDefault("pagination.defaultPageSize", 20)
	v.SetDefault("pagination.maxPageSize", 100)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		RollbarToken: v.GetString("rollbarToken"),
		SeedFile:     v.GetString("seedFile"),
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			Host:            v.GetString("server.host"),
			DebugHost:       v.GetString("server.debugHost"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
		},
		Email: EmailConfig{
			From:        v.GetString("email.from"),
			SendgridKey: v.GetString("email.sendgridKey"),
		},
		Pagination: PaginationConfig{
			DefaultPageSize: v.GetInt("pagination.defaultPageSize"),
			MaxPageSize:     v.GetInt("pagination.maxPageSize"),
		},
	}
	if conf.Pagination.MaxPageSize < conf.Pagination.DefaultPageSize {
		conf.Pagination.MaxPageSize = conf.Pagination.DefaultPageSize
	}
	return conf, nil
}

// DefaultFromEmail parses Email.From, falling back to the bare address when it is not RFC 5322.
func (c *Config) DefaultFromEmail() mail.Address {
	if addr, err := mail.ParseAddress(c.Email.From); err == nil {
		return *addr
	}
	return mail.Address{Name: c.AppName, Address: c.Email.From}
}
