package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackDurationMs(t *testing.T) {
	require.Equal(t, int64(0), Track{}.DurationMs())
	require.Equal(t, int64(1000), NewTrack(make([]float32, SampleRate)).DurationMs())
	require.Equal(t, int64(500), NewTrack(make([]float32, SampleRate/2)).DurationMs())
}

func TestTrackSlice(t *testing.T) {
	track := trackOfMs(1000)

	t.Run("sub range", func(t *testing.T) {
		require.Equal(t, int64(250), track.Slice(250, 500).DurationMs())
	})

	t.Run("clamped to track end", func(t *testing.T) {
		require.Equal(t, int64(500), track.Slice(500, 2000).DurationMs())
	})

	t.Run("empty range", func(t *testing.T) {
		require.Equal(t, int64(0), track.Slice(500, 500).DurationMs())
	})
}

func TestTrackWAV(t *testing.T) {
	samples := make([]float32, 160)
	samples[0] = 0.5
	wav := NewTrack(samples).WAV()

	require.Len(t, wav, 44+len(samples)*2)
	require.Equal(t, "RIFF", string(wav[0:4]))
	require.Equal(t, "WAVE", string(wav[8:12]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[22:]))
	require.Equal(t, uint32(SampleRate), binary.LittleEndian.Uint32(wav[24:]))
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:]))
	require.Equal(t, uint32(len(samples)*2), binary.LittleEndian.Uint32(wav[40:]))
	require.Equal(t, uint16(16384), binary.LittleEndian.Uint16(wav[44:]))
}
