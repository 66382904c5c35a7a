package meander

import (
	"math"
	"sort"
)

// SectionType classifies a point of interest on the path. Types are listed
// in priority order: when a position satisfies several spacings, the
// lowest-valued (highest-priority) type wins.
type SectionType uint8

const (
	SectionAgent      SectionType = iota // persona panel, every 60 units
	SectionMilestone                     // floating milestone text, every 40
	SectionShape                         // geometric marker, every 15
	SectionDecorative                    // small decoration, every 8
	SectionMicro                         // micro-stop, every 3
)

// String returns the lowercase name of the section type.
func (t SectionType) String() string {
	switch t {
	case SectionAgent:
		return "agent"
	case SectionMilestone:
		return "milestone"
	case SectionShape:
		return "shape"
	case SectionDecorative:
		return "decorative"
	case SectionMicro:
		return "micro"
	default:
		return "unknown"
	}
}

// Spacing returns the fixed interval, in path units, between sections of
// this type.
func (t SectionType) Spacing() int {
	switch t {
	case SectionAgent:
		return 60
	case SectionMilestone:
		return 40
	case SectionShape:
		return 15
	case SectionDecorative:
		return 8
	default:
		return 3
	}
}

// magnetism returns the type's pull strength in [0, 100].
func (t SectionType) magnetism() float64 {
	switch t {
	case SectionAgent:
		return 90
	case SectionMilestone:
		return 70
	case SectionShape:
		return 55
	case SectionDecorative:
		return 30
	default:
		return 15
	}
}

// baseSnapDuration returns the type's base snap transition length in seconds.
// The actual duration scales with travel distance, capped at twice the base.
func (t SectionType) baseSnapDuration() float64 {
	switch t {
	case SectionAgent:
		return 1.2
	case SectionMilestone:
		return 1.0
	case SectionShape:
		return 0.8
	case SectionDecorative:
		return 0.6
	default:
		return 0.4
	}
}

// Section is a point of interest on the path. The section map holds exactly
// one Section per qualifying integer position and is immutable once built.
type Section struct {
	Position     int
	Type         SectionType
	Magnetism    float64 // pull strength in [0, 100]
	SnapDuration float64 // base eased-transition length in seconds
}

// sectionFilter narrows section queries.
type sectionFilter struct {
	agentsOnly   bool
	minMagnetism float64
}

// sectionMap is the static ordered table of sections, sorted ascending by
// position. Built once at engine construction, never mutated.
type sectionMap struct {
	sections []Section
}

// buildSectionMap generates one Section per integer position in [0, horizon]
// divisible by at least one type spacing, selecting the highest-priority
// type at shared positions (agent > milestone > shape > decorative > micro).
func buildSectionMap(horizon int) sectionMap {
	types := []SectionType{SectionAgent, SectionMilestone, SectionShape, SectionDecorative, SectionMicro}
	sections := make([]Section, 0, horizon/SectionMicro.Spacing()+1)
	for pos := 0; pos <= horizon; pos++ {
		for _, t := range types {
			if pos%t.Spacing() != 0 {
				continue
			}
			sections = append(sections, Section{
				Position:     pos,
				Type:         t,
				Magnetism:    t.magnetism(),
				SnapDuration: t.baseSnapDuration(),
			})
			break
		}
	}
	return sectionMap{sections: sections}
}

// matches reports whether s passes the filter.
func (f sectionFilter) matches(s Section) bool {
	if f.agentsOnly && s.Type != SectionAgent {
		return false
	}
	return s.Magnetism >= f.minMagnetism
}

// searchFrom returns the index of the first section with Position >= pos.
func (m sectionMap) searchFrom(pos float64) int {
	return sort.Search(len(m.sections), func(i int) bool {
		return float64(m.sections[i].Position) >= pos
	})
}

// next returns the first section strictly past from in the given direction
// (+1 forward, -1 backward) that passes the filter. Out-of-range requests
// report ok=false.
func (m sectionMap) next(from float64, dir int, filter sectionFilter) (Section, bool) {
	if dir >= 0 {
		for i := m.searchFrom(from); i < len(m.sections); i++ {
			s := m.sections[i]
			if float64(s.Position) > from && filter.matches(s) {
				return s, true
			}
		}
		return Section{}, false
	}
	for i := m.searchFrom(from) - 1; i >= 0; i-- {
		s := m.sections[i]
		if float64(s.Position) < from && filter.matches(s) {
			return s, true
		}
	}
	return Section{}, false
}

// between returns the contiguous run of sections with positions in [lo, hi].
// The returned slice aliases the map; callers must not mutate it.
func (m sectionMap) between(lo, hi float64) []Section {
	start := m.searchFrom(lo)
	end := start
	for end < len(m.sections) && float64(m.sections[end].Position) <= hi {
		end++
	}
	return m.sections[start:end]
}

// withinRadius returns all sections within radius of pos.
func (m sectionMap) withinRadius(pos, radius float64) []Section {
	return m.between(pos-radius, pos+radius)
}

// nearest returns the section closest to pos. Ties resolve to the earlier
// section. ok is false only for an empty map.
func (m sectionMap) nearest(pos float64) (Section, bool) {
	if len(m.sections) == 0 {
		return Section{}, false
	}
	i := m.searchFrom(pos)
	if i == len(m.sections) {
		return m.sections[i-1], true
	}
	if i == 0 {
		return m.sections[0], true
	}
	before := m.sections[i-1]
	after := m.sections[i]
	if math.Abs(pos-float64(before.Position)) <= math.Abs(float64(after.Position)-pos) {
		return before, true
	}
	return after, true
}
