package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
)

type StorageType string

const (
	StoragePostgres StorageType = "postgres"
	StorageBigQuery StorageType = "bigquery"
	StorageNone     StorageType = "none"
)

type LLMProvider string

const (
	ProviderOllama LLMProvider = "ollama"
	ProviderOpenAI LLMProvider = "openai"
	ProviderGemini LLMProvider = "gemini"
)

type Config struct {
	Addr          string
	Debug         bool
	GitHubToken   string // Valgfritt – for private repo
	CloneDir      string
	LLM           LLMProvider
	OllamaBaseURL string
	OllamaModel   string
	OpenAIKey     string
	OpenAIModel   string
	GeminiKey     string
	GeminiModel   string
	Storage       StorageType
	PostgresDSN   string
	BQProjectID   string
	BQDataset     string
	BQCredentials string // Valgfritt hvis GCP auth skjer automatisk
	Parallelism   int    // maks antall samtidige genereringsoppgaver
}

// LoadConfigWithEnv leser konfigurasjon fra en getenv-funksjon, slik at
// tester kan injisere et falskt miljø.
func LoadConfigWithEnv(getenv func(string) string) Config {
	cfg := Config{
		Addr:          getenv("REPODOKKA_ADDR"),
		Debug:         getenv("REPODOKKA_DEBUG") == "true",
		GitHubToken:   getenv("GITHUB_TOKEN"),
		CloneDir:      getenv("CLONE_DIR"),
		LLM:           LLMProvider(getenv("LLM_PROVIDER")),
		OllamaBaseURL: getenv("OLLAMA_BASE_URL"),
		OllamaModel:   getenv("OLLAMA_MODEL"),
		OpenAIKey:     getenv("OPENAI_API_KEY"),
		OpenAIModel:   getenv("OPENAI_MODEL"),
		GeminiKey:     getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL"),
		Storage:       StorageType(getenv("REPODOKKA_STORAGE")),
		PostgresDSN:   getenv("POSTGRES_DSN"),
		BQProjectID:   getenv("BQ_PROJECT_ID"),
		BQDataset:     getenv("BQ_DATASET"),
		BQCredentials: getenv("BQ_CREDENTIALS"),
		Parallelism:   1,
	}

	if pStr := getenv("REPODOKKA_PARALL"); pStr != "" {
		if p, err := strconv.Atoi(pStr); err == nil && p > 0 {
			cfg.Parallelism = p
		}
	}

	// Fornuftige standardverdier
	if cfg.Addr == "" {
		cfg.Addr = ":8000"
	}
	if cfg.CloneDir == "" {
		cfg.CloneDir = filepath.Join(os.TempDir(), "repodokka_repos")
	}
	if cfg.LLM == "" {
		cfg.LLM = ProviderOllama
	}
	if cfg.OllamaBaseURL == "" {
		cfg.OllamaBaseURL = "http://localhost:11434"
	}
	if cfg.OllamaModel == "" {
		cfg.OllamaModel = "deepseek-coder:6.7b"
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.0-flash"
	}
	if cfg.Storage == "" {
		cfg.Storage = StorageNone
	}

	return cfg
}

// ValidateConfig sjekker at kombinasjonen av verdier gir mening.
func ValidateConfig(cfg Config) error {
	switch cfg.LLM {
	case ProviderOllama:
		// Lokal modell – trenger ingen nøkkel
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return errors.New("OPENAI_API_KEY må være satt for openai-provider")
		}
	case ProviderGemini:
		if cfg.GeminiKey == "" {
			return errors.New("GEMINI_API_KEY må være satt for gemini-provider")
		}
	default:
		return errors.New("ugyldig verdi for LLM_PROVIDER – må være 'ollama', 'openai' eller 'gemini'")
	}

	switch cfg.Storage {
	case StorageNone:
	case StoragePostgres:
		if cfg.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN må være satt for postgres-lagring")
		}
	case StorageBigQuery:
		if cfg.BQProjectID == "" || cfg.BQDataset == "" {
			return errors.New("BQ_PROJECT_ID og BQ_DATASET må være satt for bigquery-lagring")
		}
	default:
		return errors.New("ugyldig verdi for REPODOKKA_STORAGE – må være 'postgres', 'bigquery' eller 'none'")
	}

	return nil
}

// LoadAndValidateConfig leser konfigurasjon fra prosessmiljøet.
func LoadAndValidateConfig() (Config, error) {
	cfg := LoadConfigWithEnv(os.Getenv)
	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
