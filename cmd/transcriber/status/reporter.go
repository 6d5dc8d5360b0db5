// Package status decouples pipeline progress reporting from any particular
// presentation. The pipeline pushes events to a Reporter; implementations
// are expected to accept calls without blocking the pipeline worker.
package status

// Reporter is the capability set consumed by the pipeline.
type Reporter interface {
	SetStatus(text string)
	Log(line string)
	SetProgressBounds(maxValue int)
	SetProgressValue(value int)
	SwitchToDeterminate()
	ReportError(title, message string)
	ReportInfo(title, message string)
	SetBusy(busy bool)
}

// Nop discards all events.
type Nop struct{}

func (Nop) SetStatus(_ string)      {}
func (Nop) Log(_ string)            {}
func (Nop) SetProgressBounds(_ int) {}
func (Nop) SetProgressValue(_ int)  {}
func (Nop) SwitchToDeterminate()    {}
func (Nop) ReportError(_, _ string) {}
func (Nop) ReportInfo(_, _ string)  {}
func (Nop) SetBusy(_ bool)          {}
