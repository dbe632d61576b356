package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		JWT:      JWTConfig{SecretKey: "0123456789abcdef0123456789abcdef"},
		Postgres: PostgresConfig{Host: "localhost", DBName: "alerts"},
		Redis:    RedisConfig{Host: "localhost", Port: 6379},
		Monitor:  MonitorConfig{Interval: time.Minute, UrgentRatio: 0.5, DigestHour: 8},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "short secret", mutate: func(c *Config) { c.JWT.SecretKey = "short" }, wantErr: true},
		{name: "missing db", mutate: func(c *Config) { c.Postgres.DBName = "" }, wantErr: true},
		{name: "missing redis port", mutate: func(c *Config) { c.Redis.Port = 0 }, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) { c.Monitor.Interval = 0 }, wantErr: true},
		{name: "ratio above one", mutate: func(c *Config) { c.Monitor.UrgentRatio = 1.5 }, wantErr: true},
		{name: "bad digest hour", mutate: func(c *Config) { c.Monitor.DigestHour = 24 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
