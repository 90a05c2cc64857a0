package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"moving-estimate-api/internal/config"
	"moving-estimate-api/internal/repository"

	"github.com/jackc/pgx/v5"
)

func main() {
	table := flag.String("table", "", "Reference table to load: "+tableNames())
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	spec, ok := tables[*table]
	if !ok || *file == "" {
		fmt.Printf("Error: --table (%s) and --file flags are required\n", tableNames())
		os.Exit(1)
	}

	fmt.Printf("Starting import of %s from file: %s\n", *table, *file)

	f, err := os.Open(*file)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	rows, err := parseCSV(f, spec)
	f.Close()
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(rows))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to DB
	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	// Ensure tables exist
	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	before, err := countRows(ctx, conn, spec)
	if err != nil {
		fmt.Printf("Error counting records: %v\n", err)
		os.Exit(1)
	}

	if err := insertRecords(ctx, conn, spec, rows); err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	if err := verifyImport(ctx, conn, spec, before+len(rows)); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records into %s\n", len(rows), spec.name)
}

func insertRecords(ctx context.Context, conn *pgx.Conn, spec tableSpec, rows [][]any) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(ctx, pgx.Identifier{spec.name}, spec.columns, pgx.CopyFromRows(rows))
	return err
}

func countRows(ctx context.Context, conn *pgx.Conn, spec tableSpec) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM " + pgx.Identifier{spec.name}.Sanitize()
	if err := conn.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func verifyImport(ctx context.Context, conn *pgx.Conn, spec tableSpec, expectedCount int) error {
	count, err := countRows(ctx, conn, spec)
	if err != nil {
		return err
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}
	return nil
}
