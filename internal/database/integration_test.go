package database

import (
	"context"
	"os"
	"testing"
)

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	// Skip if not in integration test mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	// Test with SQLite for integration testing
	dbPath := "test_integration.db"
	defer os.Remove(dbPath)

	// Test initialization
	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Test connection
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Test that tables were created by migrations
	tables := []string{
		"users", "sessions", "password_reset_tokens",
		"daily_tasks", "academic_marks", "user_subjects",
		"mood_entries", "daily_reflections", "user_streaks", "creative_ideas",
	}

	for _, table := range tables {
		query := "SELECT name FROM sqlite_master WHERE type='table' AND name=?"
		var name string
		err := db.QueryRowContext(ctx, query, table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}
}

// TestUpsertIntegration verifies that the dialect upsert clause replaces
// instead of duplicating, and that duplicate errors are recognized
func TestUpsertIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_upsert.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	if _, err := db.Exec(
		"INSERT INTO users (email, password_hash, name) VALUES (?, ?, ?)",
		"test@example.com", "hash", "Test User",
	); err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}

	upsert := "INSERT INTO mood_entries (user_id, mood, energy_level, date) VALUES (?, ?, ?, ?) " +
		db.Dialect.UpsertClause([]string{"user_id", "date"}, []string{"mood", "energy_level"})

	if _, err := db.Exec(upsert, 1, "happy", 4, "2025-06-15"); err != nil {
		t.Fatalf("First upsert failed: %v", err)
	}
	if _, err := db.Exec(upsert, 1, "stressed", 2, "2025-06-15"); err != nil {
		t.Fatalf("Second upsert failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM mood_entries WHERE user_id = ? AND date = ?", 1, "2025-06-15").Scan(&count); err != nil {
		t.Fatalf("Failed to count mood entries: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected one mood entry after upserts, got %d", count)
	}

	var mood string
	if err := db.QueryRow("SELECT mood FROM mood_entries WHERE user_id = ? AND date = ?", 1, "2025-06-15").Scan(&mood); err != nil {
		t.Fatalf("Failed to read mood entry: %v", err)
	}
	if mood != "stressed" {
		t.Errorf("Expected second upsert to win, got mood %q", mood)
	}

	// A plain duplicate insert should be recognized as such
	if _, err := db.Exec("INSERT INTO user_subjects (user_id, name) VALUES (?, ?)", 1, "Physics"); err != nil {
		t.Fatalf("Failed to insert subject: %v", err)
	}
	_, err = db.Exec("INSERT INTO user_subjects (user_id, name) VALUES (?, ?)", 1, "Physics")
	if err == nil {
		t.Fatal("Expected duplicate subject insert to fail")
	}
	if !db.IsDuplicateError(err) {
		t.Errorf("IsDuplicateError() = false for %v", err)
	}
}
