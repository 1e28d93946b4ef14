// Package database provides a unified interface for connecting to file
// storage backends.
//
// The package supports multiple database backends (PostgreSQL and SQLite) and
// handles connection management and migrations automatically.
//
// # Supported Backends
//
//   - PostgreSQL: Production-ready backend using pgx connection pool
//   - SQLite: Lightweight backend suitable for development and single-node deployments
//
// # Usage
//
//	cfg := database.Config{
//	    Type:  "sqlite",
//	    DSN:   "filedepot.db",
//	    Table: "file_records",
//	}
//
//	repo, cleanup, err := database.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cleanup()
//
// The Connect function automatically:
//   - Validates the configured table name
//   - Opens the database connection
//   - Runs schema migrations
//   - Returns a ready-to-use FileRepo
//
// # Subpackages
//
//   - database/postgres: PostgreSQL implementation using pgx
//   - database/sqlite: SQLite implementation using modernc.org/sqlite
package database
