package config

import (
	"encoding/json"
	"os"

	"github.com/joho/godotenv"
)

// Config enthält alle Konfigurationseinstellungen
type Config struct {
	// Server-Einstellungen
	ServerPort string `json:"server_port"`

	// Pfade
	DataDir      string `json:"data_dir"`
	MaterialsDir string `json:"materials_dir"`
	DatabasePath string `json:"database_path"`

	// AI-Einstellungen (Schlüssel kommt nur aus der Umgebung)
	AIBaseURL    string `json:"ai_base_url"`
	AIModel      string `json:"ai_model"`
	AIAPIVersion string `json:"ai_api_version"`
	AIKey        string `json:"-"`
}

// Default gibt die Standardkonfiguration zurück
func Default() *Config {
	return &Config{
		ServerPort:   "5001",
		DataDir:      "data",
		MaterialsDir: "materials",
		DatabasePath: "data/studydash.db",
		AIModel:      "gpt-4.1",
		AIAPIVersion: "2024-12-01-preview",
	}
}

// Load lädt die Konfiguration aus einer Datei und ergänzt sie aus der
// Umgebung (.env wird berücksichtigt, falls vorhanden).
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return cfg, err
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv überschreibt Einstellungen aus Umgebungsvariablen
func (c *Config) applyEnv() {
	godotenv.Load()

	if v := os.Getenv("STUDYDASH_AI_KEY"); v != "" {
		c.AIKey = v
	}
	if v := os.Getenv("STUDYDASH_AI_BASE_URL"); v != "" {
		c.AIBaseURL = v
	}
	if v := os.Getenv("STUDYDASH_AI_MODEL"); v != "" {
		c.AIModel = v
	}
	if v := os.Getenv("STUDYDASH_AI_API_VERSION"); v != "" {
		c.AIAPIVersion = v
	}
	if v := os.Getenv("STUDYDASH_PORT"); v != "" {
		c.ServerPort = v
	}
}

// Save speichert die Konfiguration in eine Datei
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
