package audio

import (
	"encoding/binary"
)

const (
	// SampleRate is the canonical sample rate every input gets resampled to.
	SampleRate = 16000

	audioChannels = 1
	audioBitDepth = 16
)

// Track is a normalized in-memory audio buffer: mono float32 PCM at
// SampleRate. Once created its sample rate and channel count never change.
type Track struct {
	samples []float32
}

func NewTrack(samples []float32) Track {
	return Track{samples: samples}
}

func (t Track) NumSamples() int {
	return len(t.samples)
}

func (t Track) DurationMs() int64 {
	return int64(len(t.samples)) * 1000 / SampleRate
}

// Slice returns the sub-track spanning [startMs, endMs), clamped to the
// track's bounds.
func (t Track) Slice(startMs, endMs int64) Track {
	start := startMs * SampleRate / 1000
	end := endMs * SampleRate / 1000
	if start < 0 {
		start = 0
	}
	if end > int64(len(t.samples)) {
		end = int64(len(t.samples))
	}
	if start >= end {
		return Track{}
	}
	return Track{samples: t.samples[start:end]}
}

// WAV wraps the track's float32 samples in a WAV (16-bit PCM, mono, 16KHz).
func (t Track) WAV() []byte {
	wavHeaderLen := 44
	wav := make([]byte, wavHeaderLen+len(t.samples)*2)
	pcm := wav[wavHeaderLen:]

	// WAV Header
	wav[0] = 'R'
	wav[1] = 'I'
	wav[2] = 'F'
	wav[3] = 'F'
	binary.LittleEndian.PutUint32(wav[4:], uint32(len(wav)-8))
	wav[8] = 'W'
	wav[9] = 'A'
	wav[10] = 'V'
	wav[11] = 'E'
	wav[12] = 'f'
	wav[13] = 'm'
	wav[14] = 't'
	wav[15] = ' '
	binary.LittleEndian.PutUint32(wav[16:], 16)
	binary.LittleEndian.PutUint16(wav[20:], 1)
	binary.LittleEndian.PutUint16(wav[22:], audioChannels)
	binary.LittleEndian.PutUint32(wav[24:], SampleRate)
	binary.LittleEndian.PutUint32(wav[28:], (SampleRate*audioBitDepth*audioChannels)/8)
	binary.LittleEndian.PutUint16(wav[32:], (audioBitDepth*audioChannels)/8)
	binary.LittleEndian.PutUint16(wav[34:], audioBitDepth)
	wav[36] = 'd'
	wav[37] = 'a'
	wav[38] = 't'
	wav[39] = 'a'
	binary.LittleEndian.PutUint32(wav[40:], uint32(len(t.samples)*2))

	// Convert audio samples from float32 samples to uint16 PCM
	for i, s := range t.samples {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s*32768.0))
	}

	return wav
}
