// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - StorageType: mongo, sqlite or postgres (default: mongo)
  - StorageURL: storage connection string (required)
  - DBName: MongoDB database name (default: idea_board)
  - CORSOrigins: allowed cross-origin sources (default: *)

# CLI Flags

	-p            Server port
	-t            Storage type
	-d            Storage connection string
	-n            MongoDB database name
	--cors-origins Allowed CORS origins

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	STORAGE_TYPE  → -t
	MONGO_URL     → -d
	DATABASE_URL  → -d (when MONGO_URL is unset)
	DB_NAME       → -n
	CORS_ORIGINS  → --cors-origins

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - a connection string must be provided
  - the storage type must be one of mongo, sqlite, postgres

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.OpenMongo(ctx, cfg.StorageURL, cfg.DBName)
	// ...
	handler := router.NewRouter(store, cfg)
*/
package cliparse
