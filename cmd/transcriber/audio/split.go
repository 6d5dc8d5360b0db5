package audio

// Chunk is a bounded time-window slice of a track, possibly overlapping its
// neighbors. Index is 1-based for display.
type Chunk struct {
	Index   int
	StartMs int64
	EndMs   int64
	Audio   Track
}

// Split computes the ordered sequence of overlapping windows over track.
// Each chunk spans [offset, min(offset+chunkMs, duration)); iteration stops
// once a chunk ends exactly at the track duration, otherwise the offset
// advances by chunkMs-overlapMs. The step is clamped to a minimum of 1ms so
// splitting always terminates; callers are expected to reject
// overlapMs >= chunkMs during configuration validation.
func Split(track Track, chunkMs, overlapMs int64) []Chunk {
	duration := track.DurationMs()
	step := max(1, chunkMs-overlapMs)

	var chunks []Chunk
	for offset := int64(0); offset < duration; offset += step {
		end := min(offset+chunkMs, duration)
		chunks = append(chunks, Chunk{
			Index:   len(chunks) + 1,
			StartMs: offset,
			EndMs:   end,
			Audio:   track.Slice(offset, end),
		})
		if end == duration {
			break
		}
	}

	return chunks
}
