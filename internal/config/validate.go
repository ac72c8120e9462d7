package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const storageDirName = ".mini_hosts"

// Validate resolves platform defaults and checks the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.Dir) == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("storage.dir: resolve home directory: %w", err)
		}
		c.Storage.Dir = filepath.Join(home, storageDirName)
	}
	if c.Storage.PurgeRetentionDays < 0 {
		return fmt.Errorf("storage.purge_retention_days must be >= 0 (got %d)", c.Storage.PurgeRetentionDays)
	}

	if strings.TrimSpace(c.Hosts.Path) == "" {
		c.Hosts.Path = DefaultHostsPath(runtime.GOOS)
	}
	if c.Hosts.ApplyConcurrency < 1 {
		return fmt.Errorf("hosts.apply_concurrency must be >= 1 (got %d)", c.Hosts.ApplyConcurrency)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.HostsWritesPerMinute < 0 {
		return fmt.Errorf("server.hosts_writes_per_minute must be >= 0 (got %d)", c.Server.HostsWritesPerMinute)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

// DefaultHostsPath returns the location of the hosts file on the given GOOS.
func DefaultHostsPath(goos string) string {
	switch goos {
	case "windows":
		return `C:\Windows\System32\drivers\etc\hosts`
	case "android":
		return "/system/etc/hosts"
	default:
		return "/etc/hosts"
	}
}
