package path

import (
	"testing"

	"github.com/gogpu/tessellate"
)

func TestBuilderLineTriangle(t *testing.T) {
	b := NewBuilder()
	b.Begin(tessellate.Pt(0, 0))
	b.LineTo(tessellate.Pt(10, 0))
	b.LineTo(tessellate.Pt(5, 10))
	b.End(true)

	events := b.Path().Events()
	if len(events) != 4 {
		t.Fatalf("len(events) = %d, want 4 (Begin, 2x Line, End)", len(events))
	}
	begin, ok := events[0].(Begin)
	if !ok || begin.Pt != tessellate.Pt(0, 0) {
		t.Errorf("events[0] = %#v, want Begin at (0,0)", events[0])
	}
	end, ok := events[3].(End)
	if !ok || !end.Close {
		t.Errorf("events[3] = %#v, want closed End", events[3])
	}
}

func TestBuilderAssignsSequentialIDs(t *testing.T) {
	b := NewBuilder()
	b.Begin(tessellate.Pt(0, 0))
	b.LineTo(tessellate.Pt(1, 0))
	b.LineTo(tessellate.Pt(1, 1))
	b.End(false)

	events := b.Path().Events()
	begin := events[0].(Begin)
	line1 := events[1].(Line)
	line2 := events[2].(Line)
	if begin.At != 0 {
		t.Errorf("Begin.At = %d, want 0", begin.At)
	}
	if line1.To != 1 || line2.To != 2 {
		t.Errorf("Line ids = %d, %d, want 1, 2", line1.To, line2.To)
	}
}

func TestBuilderIsOpen(t *testing.T) {
	b := NewBuilder()
	if b.IsOpen() {
		t.Fatal("fresh builder should not report an open sub-path")
	}
	b.Begin(tessellate.Pt(0, 0))
	if !b.IsOpen() {
		t.Fatal("after Begin, sub-path should be open")
	}
	b.End(false)
	if b.IsOpen() {
		t.Fatal("after End, sub-path should be closed")
	}
}

func TestBuilderRect(t *testing.T) {
	b := NewBuilder()
	b.Rect(0, 0, 10, 20)
	events := b.Path().Events()
	if len(events) != 5 {
		t.Fatalf("len(events) = %d, want 5 (Begin, 3x Line, closed End)", len(events))
	}
	end := events[4].(End)
	if !end.Close {
		t.Error("Rect should close its sub-path")
	}
}

func TestFromEventsPreservesEndpointIDs(t *testing.T) {
	events := []Event{
		Begin{At: 42, Pt: tessellate.Pt(0, 0)},
		Line{To: 7, Pt: tessellate.Pt(1, 1)},
		End{Close: false},
	}
	p := FromEvents(events)
	got := p.Events()
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3", len(got))
	}
	if b := got[0].(Begin); b.At != 42 {
		t.Errorf("Begin.At = %d, want 42 (preserved, not reassigned)", b.At)
	}
	if l := got[1].(Line); l.To != 7 {
		t.Errorf("Line.To = %d, want 7 (preserved, not reassigned)", l.To)
	}
}
