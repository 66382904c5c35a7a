package meander

import (
	"fmt"
	"os"
)

// BackgroundSink is notified when the current agent index changes, e.g. to
// cross-fade an ambient background gradient. Called at most once per
// distinct index.
type BackgroundSink interface {
	UpdateBackgroundForAgent(index int)
}

// WorkloadSink is told when an eased snap transition starts and ends, so an
// animation subsystem can reduce its per-frame workload during the glide.
type WorkloadSink interface {
	SetReducedWorkMode(active bool)
}

// AudioSink plays the transition cue fired on arrival at an agent section.
// Fire-and-forget: implementations must swallow their own failures (e.g. no
// audio device, no user gesture yet), never propagate them.
type AudioSink interface {
	PlayTransitionCue()
}

// NoopBackground is the fallback BackgroundSink.
type NoopBackground struct{}

// UpdateBackgroundForAgent does nothing.
func (NoopBackground) UpdateBackgroundForAgent(int) {}

// NoopWorkload is the fallback WorkloadSink.
type NoopWorkload struct{}

// SetReducedWorkMode does nothing.
func (NoopWorkload) SetReducedWorkMode(bool) {}

// NoopAudio is the fallback AudioSink.
type NoopAudio struct{}

// PlayTransitionCue does nothing.
func (NoopAudio) PlayTransitionCue() {}

// agentNotifier derives the current agent index from position each frame and
// fires the background sink only on transition edges.
type agentNotifier struct {
	last int // last notified index, -1 before the first notification
	sink BackgroundSink
}

func newAgentNotifier(sink BackgroundSink) agentNotifier {
	return agentNotifier{last: -1, sink: sink}
}

// check compares the derived index against the last-known value and notifies
// on change.
func (n *agentNotifier) check(position float64) {
	index := AgentIndex(position)
	if index == n.last {
		return
	}
	n.last = index
	guard("background sink", func() { n.sink.UpdateBackgroundForAgent(index) })
}

// guard runs a collaborator call and converts a panic into a stderr log
// line. A failing collaborator must never corrupt motion state or halt the
// frame loop.
func guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[meander] %s panicked: %v\n", name, r)
		}
	}()
	fn()
}
