package meander

// DefaultAgents is the persona roster agent panels cycle through when the
// config does not supply its own.
var DefaultAgents = []string{
	"Aurora",
	"Cipher",
	"Drift",
	"Echo",
	"Flux",
	"Halcyon",
	"Iris",
	"Juno",
}

// agentSpacing is the path distance between agent sections, and the divisor
// for the current-agent index.
var agentSpacing = SectionAgent.Spacing()

// AgentIndex returns the agent index derived from a path position:
// floor(position / 60). Derived, never stored authoritatively.
func AgentIndex(position float64) int {
	if position < 0 {
		return 0
	}
	return int(position) / agentSpacing
}

// AgentName returns the persona name for an agent index, cycling through
// the roster. An empty roster yields an empty name.
func (e *Engine) AgentName(index int) string {
	if index < 0 {
		return ""
	}
	return agentLabel(e.cfg.Agents, index)
}

// AgentCount returns the roster length.
func (e *Engine) AgentCount() int {
	return len(e.cfg.Agents)
}
