package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"monprof_backend/database"
	"monprof_backend/internal/app"
	"monprof_backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestServer wraps the full HTTP stack over a real Postgres database.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer builds the application against the database from
// DATABASE_URL and starts an httptest server. Tests are skipped when no
// database is available.
func NewTestServer(t *testing.T) *TestServer {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL is not set, skipping integration tests")
	}

	config.LoadConfig()
	cfg := config.AppConfig

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to the test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate the test database: %v", err)
	}
	if err := database.SeedReferenceData(db); err != nil {
		t.Fatalf("Failed to seed reference data: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	log.Printf("Test server started against %s", dsn)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables wipes the mutable tables. Reference data (countries,
// cities, subjects, levels) survives so tests can rely on the seeds.
func (ts *TestServer) ClearTables() {
	err := ts.DB.Exec("TRUNCATE TABLE users, refresh_tokens, tutor_profiles, parent_profiles, course_requests, contact_unlocks, reviews, articles, comments, categories, messaging.threads, messaging.messages RESTART IDENTITY CASCADE").Error
	if err != nil {
		log.Fatalf("Failed to clear tables: %v", err)
	}
}

// SendRequest performs a JSON request against the running server and
// returns the response together with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to build HTTP request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send HTTP request: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	return res, string(resBodyBytes)
}
