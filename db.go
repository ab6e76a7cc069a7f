package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// errNoArchiveConfig means no archive database was configured. Not a
// failure: the archive is optional and the file sink is the fixed behavior.
var errNoArchiveConfig = errors.New("no archive database configured")

func buildDSNFromEnv() (string, error) {
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	user := os.Getenv("POSTGRES_USER")
	pass := os.Getenv("POSTGRES_PASSWORD")
	dbname := os.Getenv("POSTGRES_DB")
	if dbname == "" {
		if url := os.Getenv("DATABASE_URL"); url != "" {
			return url, nil
		}
		return "", errNoArchiveConfig
	}
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "5432"
	}
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, pass, dbname)
	return dsn, nil
}

// openArchive returns (nil, nil) when no archive is configured.
func openArchive() (*sql.DB, error) {
	dsn, err := buildDSNFromEnv()
	if err != nil {
		if errors.Is(err, errNoArchiveConfig) {
			return nil, nil
		}
		return nil, err
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("archive database not reachable: %w", err)
	}
	return db, nil
}

func archiveReport(db *sql.DB, rep StatisticsReport) error {
	const q = `
INSERT INTO statistics_reports
  (input_path, valid_count, rejected_count, min, max, mean, median, mode,
   variance, standard_deviation, duration_seconds, no_valid_data, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
`
	_, err := db.Exec(q,
		rep.InputPath,
		rep.ValidCount, rep.RejectedCount,
		rep.Stats.Min, rep.Stats.Max, rep.Stats.Mean, rep.Stats.Median,
		formatMode(rep.Stats.Mode),
		rep.Stats.Variance, rep.Stats.StdDev,
		rep.Elapsed.Seconds(),
		rep.NoValidData,
		rep.Timestamp,
	)
	return err
}
