package transcribe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHumanTS(t *testing.T) {
	require.Equal(t, "0:00:00", HumanTS(0))

	require.Equal(t, "0:00:00", HumanTS(999))

	require.Equal(t, "0:00:01", HumanTS(1000))

	require.Equal(t, "0:00:40", HumanTS(40000))

	require.Equal(t, "0:01:10", HumanTS(70000))

	require.Equal(t, "0:01:05", HumanTS(65000))

	require.Equal(t, "1:00:00", HumanTS(3600000))

	require.Equal(t, "1:45:45", HumanTS(6345045))
}

func TestPartHeader(t *testing.T) {
	p := Part{Index: 1, StartMs: 0, EndMs: 40000}
	require.Equal(t, "[Part 1  0:00:00–0:00:40]", p.Header())

	p = Part{Index: 12, StartMs: 3600000, EndMs: 5400000}
	require.Equal(t, "[Part 12  1:00:00–1:30:00]", p.Header())
}

func TestPartFilename(t *testing.T) {
	t.Run("colons replaced", func(t *testing.T) {
		p := Part{Index: 2, StartMs: 65000, EndMs: 125000}
		require.Equal(t, "talk_part002_0-01-05_to_0-02-05.txt", p.Filename("talk"))
	})

	t.Run("index zero padded", func(t *testing.T) {
		p := Part{Index: 1, StartMs: 0, EndMs: 40000}
		require.Equal(t, "talk_part001_0-00-00_to_0-00-40.txt", p.Filename("talk"))
	})
}
