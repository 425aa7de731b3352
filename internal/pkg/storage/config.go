package storage

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

const defaultConnectAttempts uint = 300

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
	attempts uint
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("host=%s user=%s password=%s port=%s dbname=%s sslmode=%s", c.host, c.user, c.password, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
		attempts: defaultConnectAttempts,
	}
}

func LoadConfiguration(ctx context.Context) Config {
	return NewConfig(
		env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "diwise"),
		env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	)
}
