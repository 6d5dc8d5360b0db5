package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// defaults
	LanguageDefault       = LanguageAuto
	ChunkSecondsDefault   = 60 * 30
	OverlapSecondsDefault = 30

	chunkSecondsMin = 15
	chunkSecondsMax = 3600
)

type Language string

// LanguageAuto instructs the remote service to infer the spoken language
// rather than use a fixed code.
const LanguageAuto Language = "auto"

var languageCodes = map[Language]struct{}{
	"en": {}, "en_us": {}, "en_au": {}, "en_uk": {},
	"zh": {}, "nl": {}, "fi": {}, "fr": {}, "de": {}, "hi": {}, "it": {},
	"ja": {}, "ko": {}, "pl": {}, "pt": {}, "ru": {}, "es": {}, "tr": {},
	"uk": {}, "vi": {},
}

func (l Language) IsValid() bool {
	if l == LanguageAuto {
		return true
	}
	_, ok := languageCodes[l]
	return ok
}

// Code returns the fixed language code to request, or empty when automatic
// detection should be used instead.
func (l Language) Code() string {
	if l == LanguageAuto {
		return ""
	}
	return string(l)
}

type Config struct {
	// input config
	InputPath string
	APIKey    string

	// run config
	Language       Language
	ChunkSeconds   int
	OverlapSeconds int

	// output config
	OutputDir string
}

func (cfg Config) IsValid() error {
	if cfg == (Config{}) {
		return fmt.Errorf("config cannot be empty")
	}

	if cfg.InputPath == "" {
		return fmt.Errorf("InputPath cannot be empty")
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("APIKey cannot be empty: pass it explicitly or set ASSEMBLYAI_API_KEY")
	}

	if !cfg.Language.IsValid() {
		return fmt.Errorf("Language value is not valid")
	}

	if cfg.ChunkSeconds < chunkSecondsMin || cfg.ChunkSeconds > chunkSecondsMax {
		return fmt.Errorf("ChunkSeconds should be in the range [%d, %d]", chunkSecondsMin, chunkSecondsMax)
	}

	if cfg.OverlapSeconds < 0 {
		return fmt.Errorf("OverlapSeconds should not be negative")
	}

	// A non-positive step cannot guarantee forward progress while splitting.
	if cfg.OverlapSeconds >= cfg.ChunkSeconds {
		return fmt.Errorf("OverlapSeconds should be less than ChunkSeconds")
	}

	return nil
}

// SetDefaults fills zero values. OverlapSeconds is left alone since zero is
// a valid overlap.
func (cfg *Config) SetDefaults() {
	if cfg.Language == "" {
		cfg.Language = LanguageDefault
	}

	if cfg.ChunkSeconds == 0 {
		cfg.ChunkSeconds = ChunkSecondsDefault
	}

	if cfg.OutputDir == "" && cfg.InputPath != "" {
		cfg.OutputDir = filepath.Dir(cfg.InputPath)
	}
}

func (cfg Config) ToEnv() []string {
	if cfg == (Config{}) {
		return nil
	}

	return []string{
		fmt.Sprintf("INPUT_PATH=%s", cfg.InputPath),
		fmt.Sprintf("ASSEMBLYAI_API_KEY=%s", cfg.APIKey),
		fmt.Sprintf("LANGUAGE=%s", cfg.Language),
		fmt.Sprintf("CHUNK_SECONDS=%d", cfg.ChunkSeconds),
		fmt.Sprintf("OVERLAP_SECONDS=%d", cfg.OverlapSeconds),
		fmt.Sprintf("OUTPUT_DIR=%s", cfg.OutputDir),
	}
}

func FromEnv() (Config, error) {
	var cfg Config
	cfg.InputPath = os.Getenv("INPUT_PATH")
	cfg.APIKey = strings.TrimSpace(os.Getenv("ASSEMBLYAI_API_KEY"))
	cfg.OutputDir = os.Getenv("OUTPUT_DIR")
	cfg.ChunkSeconds, _ = strconv.Atoi(os.Getenv("CHUNK_SECONDS"))
	cfg.OverlapSeconds, _ = strconv.Atoi(os.Getenv("OVERLAP_SECONDS"))

	if val := os.Getenv("LANGUAGE"); val != "" {
		cfg.Language = Language(val)
	}

	return cfg, nil
}
