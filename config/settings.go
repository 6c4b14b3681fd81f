package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server    ServerSettings    `json:"server"`
	Metadata  MetadataSettings  `json:"metadata"`
	Inference InferenceSettings `json:"inference"`
	Resolver  ResolverSettings  `json:"resolver"`
	Database  DatabaseSettings  `json:"database"`
	Auth      AuthSettings      `json:"auth"`
	Log       LogConfig         `json:"log"`
}

type ServerSettings struct {
	Host           string   `json:"host"`
	Port           int      `json:"port"`
	AllowedOrigins []string `json:"allowedOrigins"`
}

// MetadataSettings configures the TMDB client.
type MetadataSettings struct {
	TMDBAPIKey            string  `json:"tmdbApiKey"`
	Language              string  `json:"language"`
	RequestTimeoutSeconds int     `json:"requestTimeoutSeconds"`
	RetryAttempts         int     `json:"retryAttempts"`
	RequestsPerSecond     float64 `json:"requestsPerSecond"`
	Burst                 int     `json:"burst"`
}

// InferenceSettings configures the language model that guesses titles.
type InferenceSettings struct {
	Provider              string `json:"provider"`
	OpenAIAPIKey          string `json:"openaiApiKey"`
	OpenAIModel           string `json:"openaiModel"`
	GeminiAPIKey          string `json:"geminiApiKey"`
	GeminiModel           string `json:"geminiModel"`
	RequestTimeoutSeconds int    `json:"requestTimeoutSeconds"`
	RetryAttempts         int    `json:"retryAttempts"`
}

// ResolverSettings tunes the discovery pipelines.
type ResolverSettings struct {
	MaxResults        int  `json:"maxResults"`
	MaxCast           int  `json:"maxCast"`
	FailOnSearchError bool `json:"failOnSearchError"`
	MaxConcurrency    int  `json:"maxConcurrency"`
}

type DatabaseSettings struct {
	Path string `json:"path"`
}

// AuthSettings configures session tokens and password hashing.
type AuthSettings struct {
	Secret               string `json:"secret"`
	Issuer               string `json:"issuer"`
	URL                  string `json:"url"`
	TokenDurationMinutes int    `json:"tokenDurationMinutes"`
	CookieDurationHours  int    `json:"cookieDurationHours"`
	DisableXSRF          bool   `json:"disableXsrf"`
	SecureCookies        bool   `json:"secureCookies"`
	BcryptCost           int    `json:"bcryptCost"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	File       string `json:"file"`
	MaxSize    int    `json:"maxSize"`
	MaxAge     int    `json:"maxAge"`
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

// ProviderName returns the configured inference provider, defaulting to openai.
func (s InferenceSettings) ProviderName() string {
	if p := strings.ToLower(strings.TrimSpace(s.Provider)); p != "" {
		return p
	}
	return "openai"
}

// APIKey returns the key for the selected provider.
func (s InferenceSettings) APIKey() string {
	if s.ProviderName() == "gemini" {
		return s.GeminiAPIKey
	}
	return s.OpenAIAPIKey
}

// Model returns the model for the selected provider; empty selects the client default.
func (s InferenceSettings) Model() string {
	if s.ProviderName() == "gemini" {
		return s.GeminiModel
	}
	return s.OpenAIModel
}

// Timeout converts seconds to a duration.
func Timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Host:           "0.0.0.0",
			Port:           5000,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Metadata: MetadataSettings{
			Language:              "en-US",
			RequestTimeoutSeconds: 10,
			RetryAttempts:         1,
			RequestsPerSecond:     40,
			Burst:                 20,
		},
		Inference: InferenceSettings{
			Provider:              "openai",
			OpenAIModel:           "gpt-4.1-nano-2025-04-14",
			GeminiModel:           "gemini-2.0-flash",
			RequestTimeoutSeconds: 30,
			RetryAttempts:         1,
		},
		Resolver: ResolverSettings{
			MaxResults: 10,
			MaxCast:    8,
		},
		Database: DatabaseSettings{Path: "cache/moviefinder.db"},
		Auth: AuthSettings{
			Issuer:               "moviefinder",
			URL:                  "http://localhost:5000",
			TokenDurationMinutes: 15,
			CookieDurationHours:  24 * 7,
			BcryptCost:           10,
		},
		Log: LogConfig{
			File:       "cache/logs/backend.log",
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     7,
			Compress:   true,
		},
	}
}

type Manager struct {
	path string
	fs   afero.Fs
}

func NewManager(configPath string) *Manager {
	return NewManagerWithFs(afero.NewOsFs(), configPath)
}

// NewManagerWithFs returns a manager backed by fs.
func NewManagerWithFs(fs afero.Fs, configPath string) *Manager {
	return &Manager{path: configPath, fs: fs}
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.path
}

// EnsureDir ensures parent directory exists.
func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "." || dir == "" {
		return nil
	}
	return m.fs.MkdirAll(dir, 0o755)
}

// Load reads settings.json from disk or creates defaults if missing.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	exists, err := afero.Exists(m.fs, m.path)
	if err != nil {
		return Settings{}, err
	}
	if !exists {
		// create with defaults
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}

	data, err := afero.ReadFile(m.fs, m.path)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	backfill(&s)
	return s, nil
}

// backfill replaces zero values left by older or hand-edited files.
func backfill(s *Settings) {
	d := DefaultSettings()

	if strings.TrimSpace(s.Server.Host) == "" {
		s.Server.Host = d.Server.Host
	}
	if s.Server.Port == 0 {
		s.Server.Port = d.Server.Port
	}
	if s.Server.AllowedOrigins == nil {
		s.Server.AllowedOrigins = d.Server.AllowedOrigins
	}

	if strings.TrimSpace(s.Metadata.Language) == "" {
		s.Metadata.Language = d.Metadata.Language
	}
	if s.Metadata.RequestTimeoutSeconds <= 0 {
		s.Metadata.RequestTimeoutSeconds = d.Metadata.RequestTimeoutSeconds
	}
	if s.Metadata.RetryAttempts <= 0 {
		s.Metadata.RetryAttempts = d.Metadata.RetryAttempts
	}
	if s.Metadata.Burst <= 0 {
		s.Metadata.Burst = d.Metadata.Burst
	}

	if strings.TrimSpace(s.Inference.Provider) == "" {
		s.Inference.Provider = d.Inference.Provider
	}
	if strings.TrimSpace(s.Inference.OpenAIModel) == "" {
		s.Inference.OpenAIModel = d.Inference.OpenAIModel
	}
	if strings.TrimSpace(s.Inference.GeminiModel) == "" {
		s.Inference.GeminiModel = d.Inference.GeminiModel
	}
	if s.Inference.RequestTimeoutSeconds <= 0 {
		s.Inference.RequestTimeoutSeconds = d.Inference.RequestTimeoutSeconds
	}
	if s.Inference.RetryAttempts <= 0 {
		s.Inference.RetryAttempts = d.Inference.RetryAttempts
	}

	if s.Resolver.MaxResults <= 0 {
		s.Resolver.MaxResults = d.Resolver.MaxResults
	}
	if s.Resolver.MaxCast <= 0 {
		s.Resolver.MaxCast = d.Resolver.MaxCast
	}

	if strings.TrimSpace(s.Database.Path) == "" {
		s.Database.Path = d.Database.Path
	}

	if strings.TrimSpace(s.Auth.Issuer) == "" {
		s.Auth.Issuer = d.Auth.Issuer
	}
	if strings.TrimSpace(s.Auth.URL) == "" {
		s.Auth.URL = d.Auth.URL
	}
	if s.Auth.TokenDurationMinutes <= 0 {
		s.Auth.TokenDurationMinutes = d.Auth.TokenDurationMinutes
	}
	if s.Auth.CookieDurationHours <= 0 {
		s.Auth.CookieDurationHours = d.Auth.CookieDurationHours
	}
	if s.Auth.BcryptCost == 0 {
		s.Auth.BcryptCost = d.Auth.BcryptCost
	}

	if strings.TrimSpace(s.Log.File) == "" {
		s.Log.File = d.Log.File
	}
	if s.Log.MaxSize == 0 {
		s.Log.MaxSize = d.Log.MaxSize
	}
	if s.Log.MaxBackups == 0 {
		s.Log.MaxBackups = d.Log.MaxBackups
	}
	if s.Log.MaxAge == 0 {
		s.Log.MaxAge = d.Log.MaxAge
	}
}

// Save writes the provided settings to disk atomically.
func (m *Manager) Save(s Settings) error {
	if m.path == "" {
		return errors.New("config path not set")
	}
	if err := m.EnsureDir(); err != nil {
		return err
	}
	tmp := m.path + ".tmp"
	f, err := m.fs.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		f.Close()
		_ = m.fs.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = m.fs.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = m.fs.Remove(tmp)
		return err
	}
	return m.fs.Rename(tmp, m.path)
}

// ApplyEnv overlays environment overrides. They are never written back to disk.
func ApplyEnv(s *Settings, getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			s.Server.Port = port
		}
	}
	if v := strings.TrimSpace(getenv("TMDB_API_KEY")); v != "" {
		s.Metadata.TMDBAPIKey = v
	}
	if v := strings.TrimSpace(getenv("OPENAI_API_KEY")); v != "" {
		s.Inference.OpenAIAPIKey = v
	}
	if v := strings.TrimSpace(getenv("GEMINI_API_KEY")); v != "" {
		s.Inference.GeminiAPIKey = v
	}
	if v := strings.TrimSpace(getenv("MOVIEFINDER_AUTH_SECRET")); v != "" {
		s.Auth.Secret = v
	}
}
