package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	// JWTSecret signs access tokens. There is no default: the key must come
	// from the environment so it can be rotated without a code change.
	JWTSecret   string
	JWTIssuer   string
	JWTTTLHours int

	BcryptCost int

	IdempTTLSecs int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// Seed credentials for the government registrar account.
	RegistrarUsername string
	RegistrarPassword string
	RegistrarAddress  string
	RegistrarContact  string
	RegistrarCity     string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "landregistry"),
		MySQLUser: getenv("MYSQL_USER", "landregistry"),
		MySQLPass: getenv("MYSQL_PASS", "landregistry"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getenv("JWT_ISSUER", "land-registry"),
		JWTTTLHours: getenvInt("JWT_TTL_HOURS", 72),

		BcryptCost: getenvInt("BCRYPT_COST", 10),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getenvInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		RegistrarUsername: os.Getenv("REGISTRAR_USERNAME"),
		RegistrarPassword: os.Getenv("REGISTRAR_PASSWORD"),
		RegistrarAddress:  os.Getenv("REGISTRAR_ADDRESS"),
		RegistrarContact:  os.Getenv("REGISTRAR_CONTACT"),
		RegistrarCity:     os.Getenv("REGISTRAR_CITY"),
	}
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
