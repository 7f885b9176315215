package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration. Values come from the
// environment (with an optional .env file for development); flags in main
// override the input/output paths per invocation.
type Config struct {
	Input    Input    `yaml:"input"`
	Analysis Analysis `yaml:"analysis"`
	Chart    Chart    `yaml:"chart"`
	Log      Log      `yaml:"log"`
}

// Input holds dataset paths.
type Input struct {
	File      string `yaml:"file" env:"ADLENS_INPUT_FILE" env-default:"campaign_data.csv"`
	OutputDir string `yaml:"output_dir" env:"ADLENS_OUTPUT_DIR" env-default:"."`
}

// Analysis holds report tuning.
type Analysis struct {
	TopN             int     `yaml:"top_n" env:"ADLENS_TOP_N" env-default:"3"`
	ROASTarget       float64 `yaml:"roas_target" env:"ADLENS_ROAS_TARGET" env-default:"5"`
	ConversionTarget float64 `yaml:"conversion_target" env:"ADLENS_CONVERSION_TARGET" env-default:"3"`
}

// Chart holds rendering dimensions.
type Chart struct {
	Width    int `yaml:"width" env:"ADLENS_CHART_WIDTH" env-default:"1024"`
	Height   int `yaml:"height" env:"ADLENS_CHART_HEIGHT" env-default:"512"`
	BarWidth int `yaml:"bar_width" env:"ADLENS_CHART_BAR_WIDTH" env-default:"60"`
}

// Log holds logger configuration.
type Log struct {
	Level  string `yaml:"level" env:"ADLENS_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"ADLENS_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from the environment, loading .env first when
// present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a YAML file with environment
// overrides.
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
