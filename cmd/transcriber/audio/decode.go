package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// ErrDecode is returned when the decoding collaborator cannot parse the
// input file (corrupt file, unsupported codec, missing ffmpeg binary).
var ErrDecode = errors.New("failed to decode audio")

// Decoder loads an arbitrary input audio file through ffmpeg and resamples
// it to the canonical mono SampleRate representation.
type Decoder struct {
	ffmpegPath string
}

func NewDecoder(ffmpegPath string) Decoder {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return Decoder{ffmpegPath: ffmpegPath}
}

// Decode reads path and returns the normalized track.
// ffmpeg -i input -f s16le -ac 1 -ar 16000 -
func (d Decoder) Decode(ctx context.Context, path string) (Track, error) {
	cmd := exec.CommandContext(ctx, d.ffmpegPath,
		"-hide_banner", "-loglevel", "error",
		"-i", path,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ac", strconv.Itoa(audioChannels),
		"-ar", strconv.Itoa(SampleRate),
		"-",
	)

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(errOut.String())
		if detail == "" {
			detail = err.Error()
		}
		return Track{}, fmt.Errorf("%w: %s", ErrDecode, detail)
	}

	data := out.Bytes()
	if len(data)%2 != 0 {
		data = data[:len(data)-1]
	}

	samples := make([]float32, len(data)/2)
	for i := range samples {
		samples[i] = float32(int16(binary.LittleEndian.Uint16(data[i*2:]))) / 32768.0
	}

	slog.Debug("decoded audio",
		slog.String("path", path),
		slog.Int("numSamples", len(samples)))

	return Track{samples: samples}, nil
}
