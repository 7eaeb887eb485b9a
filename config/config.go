package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Store   StoreConfig   `yaml:"store"`
	Speech  SpeechConfig  `yaml:"speech"`

	NutritionBaseURL string `yaml:"nutrition_base_url"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LLMConfig selects the chat model backend.
// Provider is one of "gemini" or "openai".
type LLMConfig struct {
	Provider    string `yaml:"provider"`
	GeminiModel string `yaml:"gemini_model"`
	OpenAIModel string `yaml:"openai_model"`
}

// StoreConfig selects the message store backend.
// Type is one of "mongo", "redis" or "memory".
type StoreConfig struct {
	Type       string `yaml:"type"`
	URI        string `yaml:"uri"`
	DBName     string `yaml:"db_name"`
	Collection string `yaml:"collection"`
}

// SpeechConfig names the external commands used for speech synthesis and
// transcription. Empty values disable the corresponding feature.
type SpeechConfig struct {
	TTSCommand string `yaml:"tts_command"`
	STTCommand string `yaml:"stt_command"`
	AudioDir   string `yaml:"audio_dir"`
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

// API keys are kept out of config.yaml; they come from the environment
// (populated from .env by InitApp).

func GeminiAPIKey() string { return os.Getenv("GEMINI_API_KEY") }

func OpenAIAPIKey() string { return os.Getenv("OPENAI_API_KEY") }

func NutritionixAppID() string { return os.Getenv("NUTRITIONIX_APP_ID") }

func NutritionixAPIKey() string { return os.Getenv("NUTRITIONIX_API_KEY") }

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
