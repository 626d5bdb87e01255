package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Board describes one board's input; the folder name carries the module
// code in its second underscore-delimited segment.
type Board struct {
	FolderName  string `yaml:"board_folder"`
	BoardID     int    `yaml:"board_id"`
	InputDir    string `yaml:"input_dir"`
	ReportFile  string `yaml:"report_file"`
	ReportSheet string `yaml:"report_sheet"`
}

type Config struct {
	Platform    string  `yaml:"platform"`
	Boards      []Board `yaml:"boards"`
	LookupFile  string  `yaml:"lookup_file"`
	LookupSheet string  `yaml:"lookup_sheet"`
	OutputDir   string  `yaml:"output_dir"`
	OutputFile  string  `yaml:"output_file"`
}

// Load reads the run configuration. ERPTGEN_OUTPUT_DIR and
// ERPTGEN_OUTPUT_FILE override the configured output location.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := getEnv("ERPTGEN_OUTPUT_DIR", ""); v != "" {
		cfg.OutputDir = v
	}
	if v := getEnv("ERPTGEN_OUTPUT_FILE", ""); v != "" {
		cfg.OutputFile = v
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Platform) == "" {
		return fmt.Errorf("config: platform is required")
	}
	if strings.TrimSpace(c.LookupFile) == "" {
		return fmt.Errorf("config: lookup_file is required")
	}
	if strings.TrimSpace(c.LookupSheet) == "" {
		return fmt.Errorf("config: lookup_sheet is required")
	}
	if strings.TrimSpace(c.OutputFile) == "" {
		return fmt.Errorf("config: output_file is required")
	}
	for i, b := range c.Boards {
		if strings.TrimSpace(b.FolderName) == "" {
			return fmt.Errorf("config: boards[%d]: board_folder is required", i)
		}
		if strings.TrimSpace(b.ReportFile) == "" {
			return fmt.Errorf("config: boards[%d]: report_file is required", i)
		}
		if strings.TrimSpace(b.ReportSheet) == "" {
			return fmt.Errorf("config: boards[%d]: report_sheet is required", i)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
