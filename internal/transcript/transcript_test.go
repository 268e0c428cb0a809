package transcript

import (
	"testing"
	"time"
)

func TestSegmentValidate(t *testing.T) {
	good := Segment{ID: "a", Speaker: "Ana", Start: 0, End: time.Second, Text: "hi", Confidence: 0.9}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid segment rejected: %v", err)
	}
	cases := []struct {
		name string
		mut  func(*Segment)
	}{
		{"empty id", func(s *Segment) { s.ID = "" }},
		{"negative start", func(s *Segment) { s.Start = -time.Second }},
		{"end before start", func(s *Segment) { s.End = 0 }},
		{"confidence above one", func(s *Segment) { s.Confidence = 1.5 }},
		{"blank text", func(s *Segment) { s.Text = "   " }},
	}
	for _, tc := range cases {
		s := good
		tc.mut(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestSessionValidateOrdering(t *testing.T) {
	sess := NewMockSession()
	if err := sess.Validate(); err != nil {
		t.Fatalf("mock session invalid: %v", err)
	}
	sess.Segments[1].Start = 0 // overlaps segment 0
	if err := sess.Validate(); err == nil {
		t.Fatal("expected overlap error")
	}
}

func TestApplyText(t *testing.T) {
	sess := NewMockSession()
	id := sess.Segments[2].ID
	if err := sess.ApplyText(id, "  corrected line  "); err != nil {
		t.Fatalf("ApplyText: %v", err)
	}
	seg := sess.Segments[2]
	if seg.Text != "corrected line" {
		t.Fatalf("text = %q", seg.Text)
	}
	if !seg.Edited {
		t.Fatal("segment not marked edited")
	}
	if err := sess.ApplyText(id, "   "); err == nil {
		t.Fatal("blank text accepted")
	}
	if err := sess.ApplyText("nope", "x"); err == nil {
		t.Fatal("unknown id accepted")
	}
}

func TestCycleSpeakerWraps(t *testing.T) {
	sess := NewMockSession()
	id := sess.Segments[0].ID // Ana
	if err := sess.CycleSpeaker(id); err != nil {
		t.Fatalf("CycleSpeaker: %v", err)
	}
	if got := sess.Segments[0].Speaker; got != "Ben" {
		t.Fatalf("speaker = %q, want Ben", got)
	}
	if err := sess.CycleSpeaker(id); err != nil {
		t.Fatalf("CycleSpeaker: %v", err)
	}
	if got := sess.Segments[0].Speaker; got != "Ana" {
		t.Fatalf("speaker = %q, want Ana (wrapped)", got)
	}
}

func TestSegmentAt(t *testing.T) {
	sess := NewMockSession()
	if i := sess.SegmentAt(5 * time.Second); i != 1 {
		t.Fatalf("SegmentAt(5s) = %d, want 1", i)
	}
	// 33.4s..34.8s is a gap in the mock session.
	if i := sess.SegmentAt(34 * time.Second); i != -1 {
		t.Fatalf("SegmentAt(gap) = %d, want -1", i)
	}
	if i := sess.SegmentAt(10 * time.Minute); i != -1 {
		t.Fatalf("SegmentAt(past end) = %d, want -1", i)
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{65 * time.Second, "01:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "00:00"},
	}
	for _, tc := range cases {
		if got := FormatTimestamp(tc.d); got != tc.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFingerprintStable(t *testing.T) {
	mod := time.Unix(1756000000, 0)
	a := Fingerprint("x.wav", 100, mod)
	b := Fingerprint("x.wav", 100, mod)
	if a != b {
		t.Fatal("fingerprint not deterministic")
	}
	if a == Fingerprint("x.wav", 101, mod) {
		t.Fatal("size change did not change fingerprint")
	}
	if len(a) != 32 {
		t.Fatalf("fingerprint length = %d, want 32 hex chars", len(a))
	}
}
