package integration_test

import (
	"os"
	"sync"
	"testing"

	"monprof_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
)

// GetTestServer builds the shared test server on first use. The server
// and its database connection are shared across the whole package.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set, skipping integration tests")
	}

	serverOnce.Do(func() {
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration_test_secret_12345")
		}
		os.Setenv("SERVER_ENV", "test")

		globalTestServer = helpers.NewTestServer(t)
		globalTestServer.ClearTables()
	})
	return globalTestServer
}

func TestMain(m *testing.M) {
	code := m.Run()

	if globalTestServer != nil {
		globalTestServer.Close()
	}

	os.Exit(code)
}
