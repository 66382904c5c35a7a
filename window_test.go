package meander

import (
	"reflect"
	"testing"
)

func newTestBuilder() (b *windowBuilder, dots, decor, labels *SliceGroup) {
	cfg := DefaultConfig()
	cfg.withDefaults()
	dots = &SliceGroup{}
	decor = &SliceGroup{}
	labels = &SliceGroup{}
	cfg.Dots, cfg.Decor, cfg.Labels = dots, decor, labels
	return newWindowBuilder(&cfg), dots, decor, labels
}

func findEntry(entries []WindowEntry, kind EntryKind, row int) (WindowEntry, bool) {
	for _, e := range entries {
		if e.Kind == kind && e.Row == row {
			return e, true
		}
	}
	return WindowEntry{}, false
}

func TestRebuildIdempotent(t *testing.T) {
	b, dots, decor, labels := newTestBuilder()

	b.rebuild(90)
	d1 := append([]WindowEntry(nil), dots.Entries...)
	o1 := append([]WindowEntry(nil), decor.Entries...)
	l1 := append([]WindowEntry(nil), labels.Entries...)

	b.rebuild(90)

	if !reflect.DeepEqual(d1, dots.Entries) {
		t.Error("dot entries differ between identical rebuilds")
	}
	if !reflect.DeepEqual(o1, decor.Entries) {
		t.Error("decor entries differ between identical rebuilds")
	}
	if !reflect.DeepEqual(l1, labels.Entries) {
		t.Error("label entries differ between identical rebuilds")
	}
}

func TestRebuildFractionalPositionSameWindow(t *testing.T) {
	b, dots, _, _ := newTestBuilder()

	b.rebuild(90)
	d1 := append([]WindowEntry(nil), dots.Entries...)
	b.rebuild(90.7)

	if !reflect.DeepEqual(d1, dots.Entries) {
		t.Error("window should depend only on floor(position)")
	}
}

func TestRebuildAt90Decorations(t *testing.T) {
	b, _, decor, labels := newTestBuilder()
	b.rebuild(90)

	// Rows span [60, 120).
	if _, ok := findEntry(decor.Entries, EntryFeature, 90); !ok {
		t.Error("expected feature object at row 90")
	}
	if _, ok := findEntry(labels.Entries, EntryMilestoneText, 80); !ok {
		t.Error("expected milestone text at row 80")
	}
	// Row 60 is an agent slot; the agent panel outranks the milestone rule.
	if _, ok := findEntry(labels.Entries, EntryAgentPanel, 60); !ok {
		t.Error("expected agent panel at row 60")
	}
	if _, ok := findEntry(labels.Entries, EntryMilestoneText, 60); ok {
		t.Error("row 60 must not also emit milestone text")
	}
	// Row 120 is excluded by the half-open window.
	if _, ok := findEntry(labels.Entries, EntryAgentPanel, 120); ok {
		t.Error("row 120 lies outside the [60, 120) window")
	}
}

func TestRebuildSkipsNegativeRows(t *testing.T) {
	b, dots, _, _ := newTestBuilder()
	b.rebuild(0)

	// Rows [-30, 30): only 0..29 are valid.
	wantDots := 30 * b.dotsPerRow
	if len(dots.Entries) != wantDots {
		t.Errorf("dots at position 0 = %d entries, want %d", len(dots.Entries), wantDots)
	}
	for _, e := range dots.Entries {
		if e.Row < 0 {
			t.Fatalf("emitted entry for negative row %d", e.Row)
		}
	}
}

func TestRebuildDotCountAndSpread(t *testing.T) {
	b, dots, _, _ := newTestBuilder()
	b.rebuild(500)

	wantDots := 2 * b.radius * b.dotsPerRow
	if len(dots.Entries) != wantDots {
		t.Fatalf("dots = %d entries, want %d", len(dots.Entries), wantDots)
	}

	// Within one row, dots span exactly the lateral width.
	row := dots.Entries[:b.dotsPerRow]
	spread := row[len(row)-1].Position.X - row[0].Position.X
	if diff := spread - b.width; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("dot spread = %f, want %f", spread, b.width)
	}
}

func TestCubePairMirrored(t *testing.T) {
	b, _, decor, _ := newTestBuilder()
	b.rebuild(100)

	var pair []WindowEntry
	for _, e := range decor.Entries {
		if e.Kind == EntryCubePair && e.Row == 100 {
			pair = append(pair, e)
		}
	}
	if len(pair) != 2 {
		t.Fatalf("cube pair at row 100 = %d entries, want 2", len(pair))
	}
	if pair[0].Mirror == pair[1].Mirror {
		t.Error("exactly one cube of the pair should be marked Mirror")
	}
	center := (pair[0].Position.X + pair[1].Position.X) / 2
	lateral, _ := b.curve.at(100)
	if diff := center - lateral; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("cube pair not centered on the path: center=%f lateral=%f", center, lateral)
	}
}

func TestDecorationPriority(t *testing.T) {
	cases := []struct {
		row  int
		kind EntryKind
		ok   bool
	}{
		{0, EntryAgentPanel, true},
		{60, EntryAgentPanel, true},
		{120, EntryAgentPanel, true}, // 120 is also a 30- and 40-multiple; agent wins
		{40, EntryMilestoneText, true},
		{80, EntryMilestoneText, true},
		{200, EntryMilestoneText, true}, // also a 100-multiple; milestone wins
		{90, EntryFeature, true},        // also a 30-multiple; feature wins
		{100, EntryCubePair, true},
		{30, EntryShape, true},
		{16, EntryDecorShape, true},
		{48, EntryDecorShape, true},
		{7, 0, false},
		{17, 0, false},
	}
	for _, c := range cases {
		kind, ok := decorationFor(c.row)
		if ok != c.ok || (ok && kind != c.kind) {
			t.Errorf("decorationFor(%d) = (%v, %v), want (%v, %v)", c.row, kind, ok, c.kind, c.ok)
		}
	}
}

func TestAgentPanelLabels(t *testing.T) {
	b, _, _, labels := newTestBuilder()
	b.rebuild(60)

	panel, ok := findEntry(labels.Entries, EntryAgentPanel, 60)
	if !ok {
		t.Fatal("expected agent panel at row 60")
	}
	if panel.AgentIndex != 1 {
		t.Errorf("AgentIndex = %d, want 1", panel.AgentIndex)
	}
	if panel.Label != DefaultAgents[1] {
		t.Errorf("Label = %q, want %q", panel.Label, DefaultAgents[1])
	}
}
