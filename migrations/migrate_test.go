// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations registered, so goose's first query fails
	err = MigratePostgres(db)
	if err == nil {
		t.Fatal("expected error from MigratePostgres, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	for name, fn := range map[string]func() error{
		"postgres": func() error { return MigratePostgres(nil) },
		"sqlite":   func() error { return MigrateSQLite(nil) },
	} {
		t.Run(name, func(t *testing.T) {
			err := fn()
			if !errors.Is(err, ErrNilDB) {
				t.Errorf("expected ErrNilDB, got: %v", err)
			}
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	for dir, want := range map[string]int{postgresDir: 3, sqliteDir: 1} {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		if err != nil {
			t.Fatalf("glob %s: %v", dir, err)
		}
		if len(files) != want {
			t.Errorf("%s: expected %d migrations, got %d", dir, want, len(files))
		}
		for _, f := range files {
			body, _ := fs.ReadFile(embedMigrations, f)
			if !strings.Contains(string(body), "-- +goose Up") {
				t.Errorf("%s has no goose Up annotation", f)
			}
		}
	}
}
