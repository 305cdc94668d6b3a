package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging       LoggingConfig    `yaml:"logging"`
	Mongo         MongoConfig      `yaml:"mongo"`
	LLM           LLMConfig        `yaml:"llm"`
	Analysis      AnalysisConfig   `yaml:"analysis"`
	LLMQuota      LLMQuotaConfig   `yaml:"llm_quota"`
	ResourceFeeds []ResourceFeed   `yaml:"resource_feeds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// LLMConfig selects and tunes the text-generation provider.
// API keys come from the environment, never from config.yaml.
type LLMConfig struct {
	Provider string `yaml:"provider"` // "google" or "openai"
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"` // openai-compatible endpoints only
	Timeout  int    `yaml:"timeout_seconds"`
}

func (c LLMConfig) TimeoutDuration() time.Duration {
	if c.Timeout <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.Timeout) * time.Second
}

// AnalysisConfig bounds lease analysis input. The upstream provider gives no
// guidance on a maximum document size, so we enforce our own cap before the
// text ever reaches the model.
type AnalysisConfig struct {
	// MaxLeaseTextBytes rejects lease documents larger than this many bytes.
	// 0 or negative falls back to the default cap.
	MaxLeaseTextBytes int `yaml:"max_lease_text_bytes"`
}

const DefaultMaxLeaseTextBytes = 200_000

func (c AnalysisConfig) MaxLeaseBytes() int {
	if c.MaxLeaseTextBytes <= 0 {
		return DefaultMaxLeaseTextBytes
	}
	return c.MaxLeaseTextBytes
}

// LLMQuotaConfig defines per-minute and daily limits for model calls.
// Values of 0 or below mean "no limit" in that direction.
type LLMQuotaConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	RequestsPerDay    int `yaml:"requests_per_day"`
}

// ResourceFeed is a single tenant-rights feed the resource ingester pulls.
type ResourceFeed struct {
	Name   string `yaml:"name"`
	RSSURL string `yaml:"rss_url"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
