package config

import (
	"os"
)

type Config struct {
	Env            string
	DataDir        string
	StorageBackend string // memory | file | sqlite
}

func Load() Config {
	cfg := Config{
		Env:            get("APP_ENV", "dev"),
		DataDir:        get("DATA_DIR", ".campusboard"),
		StorageBackend: get("STORAGE_BACKEND", "file"),
	}
	return cfg
}

func get(key, def string) string { v := os.Getenv(key); if v == "" { return def }; return v }
