package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// SheetsCfg is the remote spreadsheet store endpoint.
type SheetsCfg struct {
	BaseURL       string `yaml:"base_url" json:"base_url"`
	APIKey        string `yaml:"api_key" json:"api_key"`
	SpreadsheetID string `yaml:"spreadsheet_id" json:"spreadsheet_id"`
	TimeoutMs     int    `yaml:"timeout_ms" json:"timeout_ms"`
}

// DashboardCfg is the file-backed service configuration. Infrastructure
// endpoints (Redis, MongoDB, Meilisearch) are wired from the environment in
// the entrypoints instead.
type DashboardCfg struct {
	PoCThreshold    int64     `yaml:"poc_threshold" json:"poc_threshold"`
	CacheTTLMinutes int       `yaml:"cache_ttl_minutes" json:"cache_ttl_minutes"`
	RefreshMinutes  int       `yaml:"refresh_minutes" json:"refresh_minutes"`
	L1CacheSize     int       `yaml:"l1_cache_size" json:"l1_cache_size"`
	Sheets          SheetsCfg `yaml:"sheets" json:"sheets"`
}

var C DashboardCfg

// Load reads the YAML config file, then applies ENV overrides. Missing file
// is not an error; defaults cover everything.
func Load(path string) error {
	C = DashboardCfg{
		PoCThreshold:    100_000,
		CacheTTLMinutes: 60,
		RefreshMinutes:  10,
		L1CacheSize:     4096,
	}

	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &C); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	// ENV overrides
	if v := os.Getenv("SHEETS_BASE_URL"); v != "" {
		C.Sheets.BaseURL = v
	}
	if v := os.Getenv("SHEETS_API_KEY"); v != "" {
		C.Sheets.APIKey = v
	}
	if v := os.Getenv("SHEETS_SPREADSHEET_ID"); v != "" {
		C.Sheets.SpreadsheetID = v
	}
	if v := os.Getenv("POC_THRESHOLD"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			C.PoCThreshold = n
		}
	}
	return nil
}

// PoCThreshold returns the configured classification threshold.
func PoCThreshold() int64 {
	if C.PoCThreshold < 0 {
		return 0
	}
	return C.PoCThreshold
}

// CacheTTL returns the resolution cache TTL.
func CacheTTL() time.Duration {
	if C.CacheTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(C.CacheTTLMinutes) * time.Minute
}

// RefreshInterval returns how often the worker re-pulls the remote store.
func RefreshInterval() time.Duration {
	if C.RefreshMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(C.RefreshMinutes) * time.Minute
}

// SheetsTimeout returns the remote store request timeout.
func SheetsTimeout() time.Duration {
	if C.Sheets.TimeoutMs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(C.Sheets.TimeoutMs) * time.Millisecond
}
