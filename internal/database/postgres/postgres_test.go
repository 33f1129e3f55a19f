//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/kozaktomas/mrzname/internal/config"
	"github.com/kozaktomas/mrzname/internal/database"
	"github.com/kozaktomas/mrzname/internal/extract"
)

func setupTestContainer(t *testing.T) (*Pool, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("Docker not available or container failed to start, skipping integration test: %v", err)
		return nil, func() {}
	}
	if container == nil {
		t.Skip("Docker not available, skipping integration test")
		return nil, func() {}
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dbURL := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	cfg := &config.DatabaseConfig{
		URL:          dbURL,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}

	pool, err := NewPool(cfg)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to create pool: %v", err)
	}

	if _, err := pool.Migrate(ctx); err != nil {
		pool.Close()
		container.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		pool.Close()
		container.Terminate(ctx)
	}

	return pool, cleanup
}

func sampleRecords() []extract.PersonRecord {
	birth := "1970-05-01"
	return []extract.PersonRecord{
		{
			ID:          "p1",
			Name:        "IVAN PETROV",
			IsLatinName: true,
			FirstName:   []string{"IVAN"},
			MiddleName:  []string{},
			SecondName:  []string{},
			LastName:    []string{"PETROV"},
			Aliases:     []string{"Vanya"},
			BirthDate:   &birth,
			Passports:   []string{"P1"},
			Nationality: []string{"RU"},
			HasPassport: true,
			Status:      []extract.Status{extract.StatusSanctioned, extract.StatusPEP},
			Countries:   []string{"RU"},
			Datasets:    []string{"eu_fsf"},
		},
		{
			ID:          "p2",
			Name:        "李小龙",
			FirstName:   []string{},
			MiddleName:  []string{},
			SecondName:  []string{},
			LastName:    []string{},
			Aliases:     []string{},
			Passports:   []string{},
			Nationality: []string{},
			Status:      []extract.Status{},
			Countries:   []string{},
			Datasets:    []string{},
		},
	}
}

func TestRunRepository(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()
	repo := NewRunRepository(pool)
	runID := uuid.New()
	records := sampleRecords()
	missing := []extract.MissingLatinName{{ID: "p2", PrimaryName: "李小龙", AllNames: []string{"李小龙"}}}

	t.Run("SaveAndGetRun", func(t *testing.T) {
		err := repo.SaveRun(ctx, database.StoredRun{ID: runID, Source: "entities.ftm.json", Entities: 3}, records, missing)
		if err != nil {
			t.Fatalf("Failed to save run: %v", err)
		}

		run, err := repo.GetRun(ctx, runID)
		if err != nil {
			t.Fatalf("Failed to get run: %v", err)
		}
		if run == nil {
			t.Fatal("Expected run, got nil")
		}
		if run.Source != "entities.ftm.json" || run.Entities != 3 {
			t.Errorf("Unexpected run %+v", run)
		}
		if run.Records != 2 || run.MissingLatin != 1 {
			t.Errorf("Expected counts 2/1, got %d/%d", run.Records, run.MissingLatin)
		}
	})

	t.Run("GetRecords", func(t *testing.T) {
		got, err := repo.GetRecords(ctx, runID)
		if err != nil {
			t.Fatalf("Failed to get records: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("Expected 2 records, got %d", len(got))
		}
		if got[0].Name != "IVAN PETROV" || got[1].Name != "李小龙" {
			t.Errorf("Records out of order: %q, %q", got[0].Name, got[1].Name)
		}
		if got[0].BirthDate == nil || *got[0].BirthDate != "1970-05-01" {
			t.Errorf("Unexpected birth date %v", got[0].BirthDate)
		}
		if got[1].BirthDate != nil {
			t.Errorf("Expected nil birth date, got %v", *got[1].BirthDate)
		}
		if len(got[0].Status) != 2 || got[0].Status[1] != extract.StatusPEP {
			t.Errorf("Unexpected status %v", got[0].Status)
		}
		if got[1].Passports == nil {
			t.Error("Expected empty passports to be non-nil")
		}
	})

	t.Run("GetMissingLatin", func(t *testing.T) {
		got, err := repo.GetMissingLatin(ctx, runID)
		if err != nil {
			t.Fatalf("Failed to get diagnostics: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p2" || got[0].AllNames[0] != "李小龙" {
			t.Errorf("Unexpected diagnostics %+v", got)
		}
	})

	t.Run("ListRuns", func(t *testing.T) {
		second := uuid.New()
		if err := repo.SaveRun(ctx, database.StoredRun{ID: second, Source: "api"}, nil, nil); err != nil {
			t.Fatalf("Failed to save run: %v", err)
		}

		runs, err := repo.ListRuns(ctx, 10)
		if err != nil {
			t.Fatalf("Failed to list runs: %v", err)
		}
		if len(runs) != 2 {
			t.Fatalf("Expected 2 runs, got %d", len(runs))
		}
		if runs[0].ID != second {
			t.Errorf("Expected newest run first, got %s", runs[0].ID)
		}
	})

	t.Run("GetRunNotFound", func(t *testing.T) {
		run, err := repo.GetRun(ctx, uuid.New())
		if err != nil {
			t.Fatalf("Failed to get run: %v", err)
		}
		if run != nil {
			t.Errorf("Expected nil, got %+v", run)
		}
	})

	t.Run("DeleteRun", func(t *testing.T) {
		if err := repo.DeleteRun(ctx, runID); err != nil {
			t.Fatalf("Failed to delete run: %v", err)
		}
		got, err := repo.GetRecords(ctx, runID)
		if err != nil {
			t.Fatalf("Failed to get records: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Expected records to cascade, got %d", len(got))
		}
	})
}

func TestMigrations(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()

	applied, pending, err := pool.MigrationStatus(ctx)
	if err != nil {
		t.Fatalf("Failed to get applied migrations: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("Expected no pending migrations, got %v", pending)
	}

	expectedMigrations := []string{
		"001_runs.sql",
		"002_missing_latin.sql",
	}

	if len(applied) != len(expectedMigrations) {
		t.Errorf("Expected %d migrations, got %d", len(expectedMigrations), len(applied))
	}

	for i, expected := range expectedMigrations {
		if i < len(applied) && applied[i].Version != expected {
			t.Errorf("Migration %d: expected '%s', got '%s'", i, expected, applied[i].Version)
		}
		if i < len(applied) && applied[i].AppliedAt.IsZero() {
			t.Errorf("Migration %d: missing applied_at", i)
		}
	}

	// A second run applies nothing.
	again, err := pool.Migrate(ctx)
	if err != nil {
		t.Fatalf("Failed to re-run migrations: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("Expected no pending migrations, got %v", again)
	}
}
