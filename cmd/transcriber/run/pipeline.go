package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/audiotools/chunk-transcriber/cmd/transcriber/audio"
	"github.com/audiotools/chunk-transcriber/cmd/transcriber/config"
	"github.com/audiotools/chunk-transcriber/cmd/transcriber/status"
	"github.com/audiotools/chunk-transcriber/cmd/transcriber/transcribe"
)

// ErrEmptyAudio is returned when splitting yields no chunks, meaning there
// is nothing to transcribe.
var ErrEmptyAudio = errors.New("audio seems empty after loading")

// Transcriber submits one chunk's encoded audio to the remote service and
// blocks until its transcript is available.
type Transcriber interface {
	Transcribe(ctx context.Context, r io.Reader) (string, error)
}

// Decoder loads an input file and normalizes it to the canonical track.
type Decoder interface {
	Decode(ctx context.Context, path string) (audio.Track, error)
}

// Pipeline executes a full transcription run on a single background worker:
// normalize, split, transcribe each chunk in order, assemble the outputs.
// Once started, a run proceeds to completion or first fatal error.
type Pipeline struct {
	cfg         config.Config
	decoder     Decoder
	transcriber Transcriber
	reporter    status.Reporter

	errCh    chan error
	doneCh   chan struct{}
	doneOnce sync.Once
}

func NewPipeline(cfg config.Config, decoder Decoder, transcriber Transcriber, reporter status.Reporter) (*Pipeline, error) {
	if err := cfg.IsValid(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	if decoder == nil {
		return nil, fmt.Errorf("decoder should not be nil")
	}

	if transcriber == nil {
		return nil, fmt.Errorf("transcriber should not be nil")
	}

	if reporter == nil {
		reporter = status.Nop{}
	}

	return &Pipeline{
		cfg:         cfg,
		decoder:     decoder,
		transcriber: transcriber,
		reporter:    reporter,
		errCh:       make(chan error, 1),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start launches the run on its own worker goroutine so a long-running
// remote call never blocks the caller.
func (p *Pipeline) Start() {
	go func() {
		p.done(p.run(context.Background()))
	}()
}

func (p *Pipeline) Done() <-chan struct{} {
	return p.doneCh
}

func (p *Pipeline) Err() error {
	select {
	case err := <-p.errCh:
		return err
	default:
		return nil
	}
}

func (p *Pipeline) done(err error) {
	p.doneOnce.Do(func() {
		p.errCh <- err
		close(p.doneCh)
	})
}

func (p *Pipeline) run(ctx context.Context) (err error) {
	p.reporter.SetBusy(true)
	defer p.reporter.SetBusy(false)
	defer func() {
		if err != nil {
			p.reporter.SetStatus("Error.")
			p.reporter.ReportError("Transcription error", err.Error())
		}
	}()

	p.reporter.SetStatus("Preparing audio…")
	track, err := p.decoder.Decode(ctx, p.cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to normalize audio: %w", err)
	}

	p.reporter.SetStatus("Splitting audio…")
	chunks := audio.Split(track,
		int64(p.cfg.ChunkSeconds)*1000, int64(p.cfg.OverlapSeconds)*1000)
	if len(chunks) == 0 {
		return fmt.Errorf("%w: please check the file", ErrEmptyAudio)
	}

	base := strings.TrimSuffix(filepath.Base(p.cfg.InputPath), filepath.Ext(p.cfg.InputPath))
	asm, err := transcribe.NewAssembler(p.cfg.OutputDir, base)
	if err != nil {
		return err
	}

	p.reporter.SwitchToDeterminate()
	p.reporter.SetProgressBounds(len(chunks))

	for _, chunk := range chunks {
		if err := p.processChunk(ctx, chunk, len(chunks), asm); err != nil {
			return err
		}
		p.reporter.SetProgressValue(chunk.Index)
	}

	fullPath, err := asm.Finalize()
	if err != nil {
		return err
	}

	p.reporter.Log("Done! Full transcript: " + fullPath)
	p.reporter.Log("Parts folder: " + asm.PartsDir())
	p.reporter.SetStatus("Finished.")
	p.reporter.ReportInfo("Done", "Transcription completed. Check the log for file paths.")

	return nil
}

// processChunk exports the chunk's audio to a transient encoded file,
// submits it and records the resulting part. The transient file is removed
// on all exit paths.
func (p *Pipeline) processChunk(ctx context.Context, chunk audio.Chunk, total int, asm *transcribe.Assembler) error {
	p.reporter.SetStatus(fmt.Sprintf("Chunk %d/%d  [%s–%s]  exporting…",
		chunk.Index, total,
		transcribe.HumanTS(chunk.StartMs), transcribe.HumanTS(chunk.EndMs)))

	tmpFile, err := os.CreateTemp("", "chunk-*.wav")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		tmpFile.Close()
		if err := os.Remove(tmpFile.Name()); err != nil {
			slog.Error("failed to remove temporary file", slog.String("err", err.Error()))
		}
	}()

	if _, err := tmpFile.Write(chunk.Audio.WAV()); err != nil {
		return fmt.Errorf("failed to export chunk: %w", err)
	}
	if _, err := tmpFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}

	p.reporter.SetStatus(fmt.Sprintf("Chunk %d/%d uploading/transcribing… (this may take a while)",
		chunk.Index, total))

	text, err := p.transcriber.Transcribe(ctx, tmpFile)
	if err != nil {
		return fmt.Errorf("chunk %d failed: %w", chunk.Index, err)
	}

	partPath, err := asm.Record(transcribe.Part{
		Index:   chunk.Index,
		StartMs: chunk.StartMs,
		EndMs:   chunk.EndMs,
		Text:    text,
	})
	if err != nil {
		return err
	}

	p.reporter.Log("Saved " + partPath)

	return nil
}
