package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Storage backend types
const (
	StorageMongo    = "mongo"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Port        int
	StorageType string
	StorageURL  string
	DBName      string
	CORSOrigins []string
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var origins string

	fs := flag.NewFlagSet("idea-board", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StorageType, "t", "", "Storage type (mongo, sqlite or postgres)")
	fs.StringVar(&cfg.StorageURL, "d", "", "Storage connection string")
	fs.StringVar(&cfg.DBName, "n", "", "MongoDB database name")
	fs.StringVar(&origins, "cors-origins", "", "Comma-separated allowed CORS origins, or *")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}

	if cfg.StorageType == "" {
		cfg.StorageType = os.Getenv("STORAGE_TYPE")
		if cfg.StorageType == "" {
			cfg.StorageType = StorageMongo
		}
	}
	switch cfg.StorageType {
	case StorageMongo, StorageSQLite, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("unknown storage type %q (use mongo, sqlite or postgres)", cfg.StorageType)
	}

	// MONGO_URL is the historical name; DATABASE_URL covers the SQL backends
	if cfg.StorageURL == "" {
		cfg.StorageURL = os.Getenv("MONGO_URL")
	}
	if cfg.StorageURL == "" {
		cfg.StorageURL = os.Getenv("DATABASE_URL")
	}
	if cfg.StorageURL == "" {
		return Config{}, errors.New("storage connection string required (use -d, MONGO_URL or DATABASE_URL env)")
	}

	if cfg.DBName == "" {
		cfg.DBName = os.Getenv("DB_NAME")
		if cfg.DBName == "" {
			cfg.DBName = "idea_board"
		}
	}

	if origins == "" {
		origins = os.Getenv("CORS_ORIGINS")
		if origins == "" {
			origins = "*"
		}
	}
	cfg.CORSOrigins = splitOrigins(origins)

	return cfg, nil
}

// splitOrigins splits a comma-separated origin list, trimming whitespace
// and dropping empty entries.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
