package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"scribedeck/internal/transcript"
)

func twoSegmentSession() *transcript.Session {
	return &transcript.Session{
		Title:    "t",
		Speakers: []string{"Ana", "Ben"},
		Duration: 10 * time.Second,
		Segments: []transcript.Segment{
			{ID: "a", Speaker: "Ana", Start: 0, End: 3*time.Second + 500*time.Millisecond, Text: "Hello there.", Confidence: 0.9},
			{ID: "b", Speaker: "Ben", Start: 4 * time.Second, End: 9 * time.Second, Text: "Hi.", Confidence: 0.8},
		},
	}
}

func TestRenderSRT(t *testing.T) {
	got, err := Render(twoSegmentSession(), Options{Format: "srt", IncludeSpeakers: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "1\n00:00:00,000 --> 00:00:03,500\nAna: Hello there.\n\n2\n00:00:04,000 --> 00:00:09,000\nBen: Hi.\n\n"
	if got != want {
		t.Fatalf("srt mismatch:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderVTT(t *testing.T) {
	got, err := Render(twoSegmentSession(), Options{Format: "vtt", IncludeSpeakers: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(got, "WEBVTT\n\n") {
		t.Fatalf("missing WEBVTT header: %q", got)
	}
	if !strings.Contains(got, "00:00:00.000 --> 00:00:03.500\n<v Ana>Hello there.") {
		t.Fatalf("missing voice cue: %q", got)
	}
}

func TestRenderTXTFieldToggles(t *testing.T) {
	sess := twoSegmentSession()
	full, _ := Render(sess, Options{Format: "txt", IncludeSpeakers: true, IncludeTimestamps: true})
	if !strings.Contains(full, "[00:00] Ana: Hello there.") {
		t.Fatalf("full txt missing fields: %q", full)
	}
	bare, _ := Render(sess, Options{Format: "txt"})
	if strings.Contains(bare, "Ana:") || strings.Contains(bare, "[00:00]") {
		t.Fatalf("bare txt still has fields: %q", bare)
	}
}

func TestRenderJSONRoundTrips(t *testing.T) {
	got, err := Render(twoSegmentSession(), Options{Format: "json"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var doc struct {
		Duration float64 `json:"duration"`
		Segments []struct {
			Start float64 `json:"start"`
			End   float64 `json:"end"`
			Text  string  `json:"text"`
		} `json:"segments"`
	}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(doc.Segments) != 2 || doc.Segments[0].End != 3.5 {
		t.Fatalf("unexpected json document: %+v", doc)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(twoSegmentSession(), Options{Format: "docx"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNextFormatCycles(t *testing.T) {
	got := "srt"
	seen := map[string]bool{}
	for i := 0; i < len(Formats); i++ {
		seen[got] = true
		got = NextFormat(got)
	}
	if got != "srt" || len(seen) != len(Formats) {
		t.Fatalf("cycle broken: ended at %q, visited %d", got, len(seen))
	}
	if NextFormat("bogus") != "srt" {
		t.Fatal("unknown format should restart the cycle")
	}
}
