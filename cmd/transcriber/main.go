package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/audiotools/chunk-transcriber/cmd/transcriber/apis/assemblyai"
	"github.com/audiotools/chunk-transcriber/cmd/transcriber/audio"
	"github.com/audiotools/chunk-transcriber/cmd/transcriber/config"
	"github.com/audiotools/chunk-transcriber/cmd/transcriber/run"
	"github.com/audiotools/chunk-transcriber/cmd/transcriber/status"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagLanguage  string
	flagChunk     int
	flagOverlap   int
	flagAPIKey    string
	flagOutputDir string
	flagFFmpeg    string
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:          "transcriber <audio-file>",
	Short:        "Transcribe long recordings in overlapping chunks through AssemblyAI",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runTranscribe,
}

func init() {
	rootCmd.Flags().StringVarP(&flagLanguage, "language", "l", string(config.LanguageDefault),
		`language code, or "auto" for automatic detection`)
	rootCmd.Flags().IntVar(&flagChunk, "chunk", config.ChunkSecondsDefault, "chunk length in seconds")
	rootCmd.Flags().IntVar(&flagOverlap, "overlap", config.OverlapSecondsDefault, "overlap between chunks in seconds")
	rootCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "AssemblyAI API key (or set ASSEMBLYAI_API_KEY)")
	rootCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "output directory (default: the input file's directory)")
	rootCmd.Flags().StringVar(&flagFFmpeg, "ffmpeg", "ffmpeg", "path to the ffmpeg binary")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func runTranscribe(_ *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.String("err", err.Error()))
	}

	envCfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg := config.Config{
		InputPath:      args[0],
		APIKey:         strings.TrimSpace(flagAPIKey),
		Language:       config.Language(flagLanguage),
		ChunkSeconds:   flagChunk,
		OverlapSeconds: flagOverlap,
		OutputDir:      flagOutputDir,
	}
	if cfg.APIKey == "" {
		cfg.APIKey = envCfg.APIKey
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = envCfg.OutputDir
	}
	cfg.SetDefaults()

	if err := cfg.IsValid(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	transcriber, err := assemblyai.NewTranscriber(assemblyai.Config{
		APIKey:       cfg.APIKey,
		LanguageCode: cfg.Language.Code(),
	})
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	reporter := status.NewAsync(status.NewConsole())
	defer reporter.Close()

	pipeline, err := run.NewPipeline(cfg, audio.NewDecoder(flagFFmpeg), transcriber, reporter)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	slog.Info("starting transcription",
		slog.String("input", cfg.InputPath),
		slog.String("language", string(cfg.Language)),
		slog.Int("chunkSeconds", cfg.ChunkSeconds),
		slog.Int("overlapSeconds", cfg.OverlapSeconds))

	pipeline.Start()
	<-pipeline.Done()

	if err := pipeline.Err(); err != nil {
		return err
	}

	slog.Info("transcription finished")

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
