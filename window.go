package meander

import "strconv"

// EntryKind distinguishes the geometry entries the window builder emits.
type EntryKind uint8

const (
	EntryDot           EntryKind = iota // lateral path marker, every row
	EntryAgentPanel                     // persona panel, every 60 rows
	EntryMilestoneText                  // floating milestone text, every 40 rows
	EntryFeature                        // special feature object, every 90 rows
	EntryCubePair                       // paired breakable cubes, every 100 rows
	EntryShape                          // assorted shape, every 30 rows except 120-multiples
	EntryDecorShape                     // decorative shape, every 16 rows except 30-multiples
)

// WindowEntry is one generated geometry entry in the visible scene window.
// Entries carry no render resources; the host maps them to meshes, text
// textures, or sprites.
type WindowEntry struct {
	Kind EntryKind
	// Row is the global row index the entry belongs to.
	Row int
	// Column is the dot's lateral slot in [0, DotsPerRow); zero for
	// decorated entries.
	Column int
	// Position is the entry's world-space position. Cube pairs emit two
	// entries mirrored about the path; Mirror marks the second.
	Position Vec3
	Mirror   bool
	// Label is the display text for milestone text and agent panels.
	Label string
	// AgentIndex is set on agent panels.
	AgentIndex int
}

// SceneGroup is the mutation surface of one logical scene-graph group. The
// window builder only ever clears and repopulates groups; it never holds
// references into them across rebuilds.
type SceneGroup interface {
	Clear()
	Add(entry WindowEntry)
}

// SliceGroup is a SceneGroup backed by a slice. It is the default group
// implementation and is handy for tests and headless hosts.
type SliceGroup struct {
	Entries []WindowEntry
}

// Clear empties the group, keeping capacity.
func (g *SliceGroup) Clear() {
	g.Entries = g.Entries[:0]
}

// Add appends an entry to the group.
func (g *SliceGroup) Add(entry WindowEntry) {
	g.Entries = append(g.Entries, entry)
}

// cubePairFlank is the extra lateral distance of each breakable cube from
// the path center line.
const cubePairFlank = 8.0

// windowBuilder synthesizes the visible slice of trail geometry around the
// current position. rebuild is a pure function of floor(position): calling
// it twice with the same position yields identical entries.
type windowBuilder struct {
	radius     int
	dotsPerRow int
	rowDepth   float64
	width      float64 // lateral world-space spread of the dot markers
	curve      pathCurve
	agents     []string

	dots   SceneGroup
	decor  SceneGroup
	labels SceneGroup
}

func newWindowBuilder(cfg *Config) *windowBuilder {
	return &windowBuilder{
		radius:     cfg.WindowRadius,
		dotsPerRow: cfg.DotsPerRow,
		rowDepth:   cfg.RowDepth,
		width:      lateralWidth(cfg.Camera),
		curve:      pathCurve{startRow: cfg.CurveStartRow, rampRows: cfg.CurveRampRows},
		agents:     cfg.Agents,
		dots:       cfg.Dots,
		decor:      cfg.Decor,
		labels:     cfg.Labels,
	}
}

// decorationFor resolves the at-most-one decorated object of a row. When a
// row satisfies several modulus rules, one consistent priority order applies:
// agent > milestone > feature > cube pair > shape > decorative.
func decorationFor(row int) (EntryKind, bool) {
	switch {
	case row%60 == 0:
		return EntryAgentPanel, true
	case row%40 == 0:
		return EntryMilestoneText, true
	case row%90 == 0:
		return EntryFeature, true
	case row%100 == 0:
		return EntryCubePair, true
	case row%30 == 0 && row%120 != 0:
		return EntryShape, true
	case row%16 == 0 && row%30 != 0:
		return EntryDecorShape, true
	default:
		return 0, false
	}
}

// rebuild replaces the entire visible geometry set for the given position.
// Rows span [floor(position)-radius, floor(position)+radius); negative row
// indices are skipped.
func (b *windowBuilder) rebuild(position float64) {
	b.dots.Clear()
	b.decor.Clear()
	b.labels.Clear()

	base := int(position)
	for i := -b.radius; i < b.radius; i++ {
		row := base + i
		if row < 0 {
			continue
		}
		lateral, elevation := b.curve.at(row)
		z := float64(row) * b.rowDepth

		for col := 0; col < b.dotsPerRow; col++ {
			x := -b.width/2 + b.width*float64(col)/float64(b.dotsPerRow-1)
			b.dots.Add(WindowEntry{
				Kind:     EntryDot,
				Row:      row,
				Column:   col,
				Position: Vec3{X: x + lateral, Y: elevation, Z: z},
			})
		}

		kind, ok := decorationFor(row)
		if !ok {
			continue
		}
		center := Vec3{X: lateral, Y: elevation, Z: z}
		switch kind {
		case EntryAgentPanel:
			index := row / agentSpacing
			b.labels.Add(WindowEntry{
				Kind:       EntryAgentPanel,
				Row:        row,
				Position:   center,
				Label:      agentLabel(b.agents, index),
				AgentIndex: index,
			})
		case EntryMilestoneText:
			b.labels.Add(WindowEntry{
				Kind:     EntryMilestoneText,
				Row:      row,
				Position: center,
				Label:    strconv.Itoa(row),
			})
		case EntryCubePair:
			left := center
			left.X -= cubePairFlank
			right := center
			right.X += cubePairFlank
			b.decor.Add(WindowEntry{Kind: EntryCubePair, Row: row, Position: left})
			b.decor.Add(WindowEntry{Kind: EntryCubePair, Row: row, Position: right, Mirror: true})
		default:
			b.decor.Add(WindowEntry{Kind: kind, Row: row, Position: center})
		}
	}
}

// agentLabel returns the persona name for an index, cycling the roster.
func agentLabel(agents []string, index int) string {
	if len(agents) == 0 {
		return ""
	}
	return agents[index%len(agents)]
}
