package status

import (
	"log/slog"
)

const eventQueueSize = 256

type eventKind int

const (
	evStatus eventKind = iota
	evLog
	evProgressBounds
	evProgressValue
	evDeterminate
	evError
	evInfo
	evBusy
)

type event struct {
	kind  eventKind
	text  string
	title string
	value int
	busy  bool
}

// Async wraps a Reporter with a buffered event queue drained by a dedicated
// goroutine, so emitting an event never blocks the caller. Delivery order
// matches emission order. Events that would overflow the queue are dropped.
type Async struct {
	sink    Reporter
	eventCh chan event
	doneCh  chan struct{}
}

func NewAsync(sink Reporter) *Async {
	a := &Async{
		sink:    sink,
		eventCh: make(chan event, eventQueueSize),
		doneCh:  make(chan struct{}),
	}

	go func() {
		defer close(a.doneCh)
		for ev := range a.eventCh {
			a.deliver(ev)
		}
	}()

	return a
}

func (a *Async) deliver(ev event) {
	switch ev.kind {
	case evStatus:
		a.sink.SetStatus(ev.text)
	case evLog:
		a.sink.Log(ev.text)
	case evProgressBounds:
		a.sink.SetProgressBounds(ev.value)
	case evProgressValue:
		a.sink.SetProgressValue(ev.value)
	case evDeterminate:
		a.sink.SwitchToDeterminate()
	case evError:
		a.sink.ReportError(ev.title, ev.text)
	case evInfo:
		a.sink.ReportInfo(ev.title, ev.text)
	case evBusy:
		a.sink.SetBusy(ev.busy)
	}
}

func (a *Async) push(ev event) {
	select {
	case a.eventCh <- ev:
	default:
		slog.Debug("status event queue is full, dropping event", slog.Int("kind", int(ev.kind)))
	}
}

// Close stops accepting events and returns once all pending events have
// been delivered to the sink.
func (a *Async) Close() {
	close(a.eventCh)
	<-a.doneCh
}

func (a *Async) SetStatus(text string) {
	a.push(event{kind: evStatus, text: text})
}

func (a *Async) Log(line string) {
	a.push(event{kind: evLog, text: line})
}

func (a *Async) SetProgressBounds(maxValue int) {
	a.push(event{kind: evProgressBounds, value: maxValue})
}

func (a *Async) SetProgressValue(value int) {
	a.push(event{kind: evProgressValue, value: value})
}

func (a *Async) SwitchToDeterminate() {
	a.push(event{kind: evDeterminate})
}

func (a *Async) ReportError(title, message string) {
	a.push(event{kind: evError, title: title, text: message})
}

func (a *Async) ReportInfo(title, message string) {
	a.push(event{kind: evInfo, title: title, text: message})
}

func (a *Async) SetBusy(busy bool) {
	a.push(event{kind: evBusy, busy: busy})
}
