package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/store-service/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() config.Config {
		t.Setenv("POSTGRES_USER", "store")
		t.Setenv("POSTGRES_PASSWORD", "secret")
		t.Setenv("JWT_SECRET", "0123456789abcdef0123")
		return config.New()
	}

	testCases := []struct {
		name    string
		modify  func(c *config.Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			modify: func(c *config.Config) {},
		},
		{
			name:    "unknown env",
			modify:  func(c *config.Config) { c.Env = "dev" },
			wantErr: true,
		},
		{
			name:    "short jwt secret",
			modify:  func(c *config.Config) { c.Auth.JWTSecret = "short" },
			wantErr: true,
		},
		{
			name:    "zero cache ttl",
			modify:  func(c *config.Config) { c.Cache.TTL = 0 },
			wantErr: true,
		},
		{
			name: "kafka disabled ignores topic",
			modify: func(c *config.Config) {
				c.Kafka.Enabled = false
				c.Kafka.Topic = ""
			},
		},
		{
			name: "kafka enabled requires topic",
			modify: func(c *config.Config) {
				c.Kafka.Enabled = true
				c.Kafka.Topic = ""
			},
			wantErr: true,
		},
		{
			name: "kafka enabled",
			modify: func(c *config.Config) {
				c.Kafka.Enabled = true
				c.Kafka.BatchTimeout = time.Millisecond
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.modify(&c)

			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
