package config

import (
	"path/filepath"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Hosts   HostsConfig   `yaml:"hosts"`
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig locates the editor's own data files.
// An empty Dir is resolved to ~/.mini_hosts during validation.
type StorageConfig struct {
	Dir                string `yaml:"dir"                  env:"MINIHOSTS_DIR"`
	PurgeRetentionDays int    `yaml:"purge_retention_days" env:"MINIHOSTS_PURGE_RETENTION_DAYS" env-default:"30"`
}

// GroupListPath is the file holding the ordered group records.
func (s StorageConfig) GroupListPath() string {
	return filepath.Join(s.Dir, "data", "id_list")
}

// IDSeqPath is the file holding the last issued group id.
func (s StorageConfig) IDSeqPath() string {
	return filepath.Join(s.Dir, "data", "id_seq")
}

// DetailDir is the directory holding one rule file per group.
func (s StorageConfig) DetailDir() string {
	return filepath.Join(s.Dir, "data", "list")
}

// HostsConfig holds settings for the OS hosts file.
// An empty Path is resolved to the platform default during validation.
type HostsConfig struct {
	Path             string `yaml:"path"              env:"HOSTS_PATH"`
	ApplyConcurrency int    `yaml:"apply_concurrency" env:"HOSTS_APPLY_CONCURRENCY" env-default:"4"`
}

// CORSConfig holds CORS settings for the desktop front-end.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:1420,tauri://localhost,http://tauri.localhost,https://tauri.localhost"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds settings of the loopback command API.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"17890"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	// HostsWritesPerMinute limits requests that rewrite the hosts file; 0 disables the limit.
	HostsWritesPerMinute int `yaml:"hosts_writes_per_minute" env:"SERVER_HOSTS_WRITES_PER_MINUTE" env-default:"30"`
}

// LogConfig holds logging settings.
// An empty File means stderr.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	File   string `yaml:"file"   env:"LOG_FILE"`
}
