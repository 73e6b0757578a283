package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Backend kinds selectable via DATABASE_TYPE.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypeSurreal  = "surreal"
)

type Config struct {
	Port         int
	DatabaseType string
	DatabaseURL  string
	SurrealURL   string
	SurrealNS    string
	SurrealDB    string
	SurrealUser  string
	SurrealPass  string
	Seed         bool
}

// ParseFlags resolves configuration from flags with environment fallback.
// Every setting has a development default so the server runs with no
// configuration at all. The SurrealDB root credentials defaulting to
// root/root is a known concern for anything beyond local development.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("my-dashboard", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or surreal)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Relational database DSN")
	fs.StringVar(&cfg.SurrealURL, "surreal-url", "", "SurrealDB RPC endpoint")
	fs.StringVar(&cfg.SurrealNS, "surreal-ns", "", "SurrealDB namespace")
	fs.StringVar(&cfg.SurrealDB, "surreal-db", "", "SurrealDB database")
	fs.StringVar(&cfg.SurrealUser, "surreal-user", "", "SurrealDB user (prefer env)")
	fs.StringVar(&cfg.SurrealPass, "surreal-pass", "", "SurrealDB password (prefer env)")
	fs.BoolVar(&cfg.Seed, "seed", false, "Load demo data into the relational database and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables, then development defaults.
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3001 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = TypeSQLite
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "my_dashboard.db"
	}

	if cfg.SurrealURL == "" {
		cfg.SurrealURL = os.Getenv("SURREALDB_URL")
	}
	if cfg.SurrealURL == "" {
		cfg.SurrealURL = "ws://localhost:8000/rpc"
	}

	if cfg.SurrealNS == "" {
		cfg.SurrealNS = os.Getenv("SURREALDB_NS")
	}
	if cfg.SurrealNS == "" {
		cfg.SurrealNS = "dashboard"
	}

	if cfg.SurrealDB == "" {
		cfg.SurrealDB = os.Getenv("SURREALDB_DB")
	}
	if cfg.SurrealDB == "" {
		cfg.SurrealDB = "my_dashboard"
	}

	if cfg.SurrealUser == "" {
		cfg.SurrealUser = os.Getenv("SURREALDB_USER")
	}
	if cfg.SurrealUser == "" {
		cfg.SurrealUser = "root"
	}

	if cfg.SurrealPass == "" {
		cfg.SurrealPass = os.Getenv("SURREALDB_PASS")
	}
	if cfg.SurrealPass == "" {
		cfg.SurrealPass = "root"
	}

	return cfg, nil
}
