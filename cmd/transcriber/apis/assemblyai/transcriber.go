package assemblyai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

// ErrTranscription is returned when the remote service reports an error
// status for a submitted chunk.
var ErrTranscription = errors.New("transcription failed")

type Config struct {
	// The AssemblyAI API key used to authenticate requests.
	APIKey string
	// LanguageCode is the fixed language to transcribe in. Empty enables
	// automatic language detection; the two are mutually exclusive.
	LanguageCode string
}

func (c Config) IsValid() error {
	if c == (Config{}) {
		return fmt.Errorf("invalid empty config")
	}

	if c.APIKey == "" {
		return fmt.Errorf("invalid APIKey: should not be empty")
	}

	return nil
}

// Transcriber wraps the AssemblyAI client with the configuration for a
// single run. Each call uploads the chunk's audio, waits for remote
// processing to complete and returns the transcript text.
type Transcriber struct {
	cfg    Config
	client *aai.Client
}

func NewTranscriber(cfg Config) (*Transcriber, error) {
	if err := cfg.IsValid(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return &Transcriber{
		cfg:    cfg,
		client: aai.NewClient(cfg.APIKey),
	}, nil
}

func (t *Transcriber) params() *aai.TranscriptOptionalParams {
	params := &aai.TranscriptOptionalParams{
		SpeechModel: aai.SpeechModelBest,
	}

	if t.cfg.LanguageCode == "" {
		params.LanguageDetection = aai.Bool(true)
	} else {
		params.LanguageCode = aai.TranscriptLanguageCode(t.cfg.LanguageCode)
	}

	return params
}

// Transcribe submits the encoded audio read from r and blocks until the
// remote service finishes processing it. This can take minutes for long
// chunks. A single attempt is made; errors are not retried.
func (t *Transcriber) Transcribe(ctx context.Context, r io.Reader) (string, error) {
	transcript, err := t.client.Transcripts.TranscribeFromReader(ctx, r, t.params())
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTranscription, err.Error())
	}

	if transcript.Status == aai.TranscriptStatusError {
		detail := "unknown error"
		if transcript.Error != nil {
			detail = *transcript.Error
		}
		return "", fmt.Errorf("%w: %s", ErrTranscription, detail)
	}

	if transcript.Text == nil {
		return "", nil
	}

	slog.Debug("chunk transcribed", slog.Int("textLen", len(*transcript.Text)))

	return *transcript.Text, nil
}
