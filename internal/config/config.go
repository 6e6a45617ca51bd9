// Package config holds application configuration.
package config

// Config is the main application configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Ollama      OllamaConfig      `mapstructure:"ollama"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
	Providers   ProvidersConfig   `mapstructure:"providers"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// OllamaConfig covers both the embedding and generation models; they share
// one Ollama instance.
type OllamaConfig struct {
	BaseURL       string `mapstructure:"base_url"`
	EmbedModel    string `mapstructure:"embed_model"`
	GenerateModel string `mapstructure:"generate_model"`
}

type HuggingFaceConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	APIKey  string `mapstructure:"api_key"`
}

type ProvidersConfig struct {
	TwelveData  TwelveDataConfig  `mapstructure:"twelvedata"`
	OpenWeather OpenWeatherConfig `mapstructure:"openweather"`
}

type TwelveDataConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

type OpenWeatherConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
}

// CatalogConfig locates the curated seed files and the built index.
type CatalogConfig struct {
	SeedDir string `mapstructure:"seed_dir"`
	DataDir string `mapstructure:"data_dir"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
