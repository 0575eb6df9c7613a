package services

import (
	"os"
	"testing"
	"time"

	"storefront/config"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		SessionTTL: 24 * time.Hour,
	}
	os.Exit(m.Run())
}
