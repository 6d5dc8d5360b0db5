package status

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	events []string
}

func (r *recordingReporter) SetStatus(text string) {
	r.events = append(r.events, "status: "+text)
}

func (r *recordingReporter) Log(line string) {
	r.events = append(r.events, "log: "+line)
}

func (r *recordingReporter) SetProgressBounds(maxValue int) {
	r.events = append(r.events, fmt.Sprintf("bounds: %d", maxValue))
}

func (r *recordingReporter) SetProgressValue(value int) {
	r.events = append(r.events, fmt.Sprintf("value: %d", value))
}

func (r *recordingReporter) SwitchToDeterminate() {
	r.events = append(r.events, "determinate")
}

func (r *recordingReporter) ReportError(title, message string) {
	r.events = append(r.events, "error: "+title+": "+message)
}

func (r *recordingReporter) ReportInfo(title, message string) {
	r.events = append(r.events, "info: "+title+": "+message)
}

func (r *recordingReporter) SetBusy(busy bool) {
	r.events = append(r.events, fmt.Sprintf("busy: %t", busy))
}

func TestAsyncDeliveryOrder(t *testing.T) {
	var rec recordingReporter
	a := NewAsync(&rec)

	a.SetBusy(true)
	a.SetStatus("Preparing audio…")
	a.SwitchToDeterminate()
	a.SetProgressBounds(3)
	a.SetProgressValue(1)
	a.Log("Saved part 1")
	a.ReportInfo("Done", "Transcription completed.")
	a.ReportError("Transcription error", "chunk 2 failed")
	a.SetBusy(false)

	a.Close()

	require.Equal(t, []string{
		"busy: true",
		"status: Preparing audio…",
		"determinate",
		"bounds: 3",
		"value: 1",
		"log: Saved part 1",
		"info: Done: Transcription completed.",
		"error: Transcription error: chunk 2 failed",
		"busy: false",
	}, rec.events)
}

func TestAsyncCloseFlushesPending(t *testing.T) {
	var rec recordingReporter
	a := NewAsync(&rec)

	for i := 1; i <= 100; i++ {
		a.SetProgressValue(i)
	}
	a.Close()

	require.Len(t, rec.events, 100)
	require.Equal(t, "value: 1", rec.events[0])
	require.Equal(t, "value: 100", rec.events[99])
}
