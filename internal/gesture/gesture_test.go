package gesture

import (
	"math"
	"testing"

	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/viewport"
	"github.com/sirupsen/logrus/hooks/test"
)

func at(x, y float64) geometry.Vector2 {
	return geometry.NewVector2(x, y)
}

func TestClick(t *testing.T) {
	tr := NewTracker()
	cursor := at(1, 1)

	in := tr.Input(Raw{Screen: at(10, 10), PrimaryPressed: true, PrimaryDown: true}, &cursor)
	if in.PrimaryClicked || in.PrimaryDown {
		t.Errorf("Press failed: expected no click and no hold, got %+v", in)
	}

	in = tr.Input(Raw{Screen: at(12, 11), PrimaryDown: true}, &cursor)
	if in.PrimaryDown {
		t.Errorf("Small travel failed: expected no hold, got %+v", in)
	}

	in = tr.Input(Raw{Screen: at(12, 11), PrimaryReleased: true}, &cursor)
	if !in.PrimaryClicked || in.PrimaryDown {
		t.Errorf("Release failed: expected click without hold, got %+v", in)
	}
	if in.Cursor != &cursor {
		t.Errorf("Release failed: expected cursor to be passed through")
	}

	in = tr.Input(Raw{Screen: at(12, 11)}, &cursor)
	if in.PrimaryClicked {
		t.Errorf("Idle frame failed: expected no click, got %+v", in)
	}
}

func TestDrag(t *testing.T) {
	tr := NewTracker()

	tr.Input(Raw{Screen: at(10, 10), PrimaryPressed: true, PrimaryDown: true}, nil)
	in := tr.Input(Raw{Screen: at(20, 10), PrimaryDown: true}, nil)
	if !in.PrimaryDown || !tr.Dragging() {
		t.Errorf("Drag failed: expected hold, got %+v", in)
	}

	// Coming back to the press position stays a drag
	in = tr.Input(Raw{Screen: at(10, 10), PrimaryDown: true}, nil)
	if !in.PrimaryDown {
		t.Errorf("Drag back failed: expected hold, got %+v", in)
	}

	in = tr.Input(Raw{Screen: at(10, 10), PrimaryReleased: true}, nil)
	if in.PrimaryClicked || in.PrimaryDown {
		t.Errorf("Drag release failed: expected neither click nor hold, got %+v", in)
	}
	if tr.Dragging() {
		t.Errorf("Drag release failed: expected drag to end")
	}
}

func TestMissedReleaseEndsPress(t *testing.T) {
	tr := NewTracker()

	tr.Input(Raw{Screen: at(0, 0), PrimaryPressed: true, PrimaryDown: true}, nil)
	in := tr.Input(Raw{Screen: at(0, 0)}, nil)
	if !in.PrimaryClicked {
		t.Errorf("Missed release failed: expected click, got %+v", in)
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker()

	tr.Input(Raw{Screen: at(0, 0), PrimaryPressed: true, PrimaryDown: true}, nil)
	tr.Reset()
	in := tr.Input(Raw{Screen: at(0, 0), PrimaryReleased: true}, nil)
	if in.PrimaryClicked {
		t.Errorf("Reset failed: expected no click, got %+v", in)
	}
}

func TestKeysPassThrough(t *testing.T) {
	tr := NewTracker()

	in := tr.Input(Raw{SecondaryPressed: true, DeletePressed: true}, nil)
	if !in.SecondaryClicked || !in.DeletePressed {
		t.Errorf("Pass through failed: got %+v", in)
	}
}

func TestPressCursorReportedWhileDragging(t *testing.T) {
	tr := NewTracker()
	press := at(3, 4)

	tr.Input(Raw{Screen: at(10, 10), PrimaryPressed: true, PrimaryDown: true}, &press)
	moved := at(9, 9)
	in := tr.Input(Raw{Screen: at(30, 10), PrimaryDown: true}, &moved)
	if in.PressCursor == nil || *in.PressCursor != press {
		t.Errorf("PressCursor failed: expected %v, got %v", press, in.PressCursor)
	}

	in = tr.Input(Raw{Screen: at(30, 10), PrimaryReleased: true}, &moved)
	if in.PressCursor != nil {
		t.Errorf("PressCursor after release failed: expected nil, got %v", in.PressCursor)
	}
}

func TestDragControlPointZoomedOut(t *testing.T) {
	for _, scale := range []float64{1, 0.5, 0.3} {
		logger, _ := test.NewNullLogger()
		ed := editor.New(editor.WithLogger(logger), editor.WithMode(editor.ModeLine))
		ed.Update(editor.Input{PrimaryClicked: true}.At(at(0, 0)))
		ed.Update(editor.Input{PrimaryClicked: true}.At(at(1000, 0)))
		ed.SetMode(editor.ModeSelect)
		ed.Update(editor.Input{PrimaryClicked: true}.At(at(500, 0)))

		vp := viewport.Viewport{Scale: scale}
		tr := NewTracker()
		frame := func(raw Raw) {
			cursor := vp.ToCanvas(raw.Screen)
			ed.Update(tr.Input(raw, &cursor))
		}

		// Press on the end point marker, then drag 20 px to the right
		press := vp.ToScreen(at(1000, 0))
		frame(Raw{Screen: press, PrimaryPressed: true, PrimaryDown: true})
		for dx := 1.0; dx <= 20; dx++ {
			frame(Raw{Screen: press.Add(at(dx, 0)), PrimaryDown: true})
		}
		frame(Raw{Screen: press.Add(at(20, 0)), PrimaryReleased: true})

		s, _ := ed.Shape(0)
		expected := 1000 + 20/scale
		if got := s.Points()[1]; math.Abs(got.X-expected) > 1e-6 || got.Y != 0 {
			t.Errorf("Drag at scale %v failed: expected end point (%v, 0), got %v", scale, expected, got)
		}
	}
}
