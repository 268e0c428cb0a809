package transcript

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Segment is one speaker turn in a session. Times are offsets from the
// start of the media.
type Segment struct {
	ID         string
	Speaker    string
	Start      time.Duration
	End        time.Duration
	Text       string
	Confidence float64
	Edited     bool
}

func (s Segment) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("segment has no id")
	}
	if s.Start < 0 {
		return fmt.Errorf("segment %s starts before zero", s.ID)
	}
	if s.End <= s.Start {
		return fmt.Errorf("segment %s ends at or before its start", s.ID)
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return fmt.Errorf("segment %s confidence %v outside [0,1]", s.ID, s.Confidence)
	}
	if strings.TrimSpace(s.Text) == "" {
		return fmt.Errorf("segment %s has empty text", s.ID)
	}
	return nil
}

func (s Segment) Duration() time.Duration { return s.End - s.Start }

// Session is a loaded transcript plus its media identity.
type Session struct {
	ID               string
	Title            string
	MediaPath        string
	MediaFingerprint string
	Duration         time.Duration
	Speakers         []string
	Segments         []Segment
}

func (s *Session) Validate() error {
	prevEnd := time.Duration(-1)
	for _, seg := range s.Segments {
		if err := seg.Validate(); err != nil {
			return err
		}
		if seg.Start < prevEnd {
			return fmt.Errorf("segment %s overlaps the previous segment", seg.ID)
		}
		prevEnd = seg.End
	}
	return nil
}

// SegmentByID returns the index of the segment with id, or -1.
func (s *Session) SegmentByID(id string) int {
	for i, seg := range s.Segments {
		if seg.ID == id {
			return i
		}
	}
	return -1
}

// ApplyText replaces a segment's text and marks it edited. Empty or
// whitespace-only text is rejected so a session never holds blank turns.
func (s *Session) ApplyText(id, text string) error {
	i := s.SegmentByID(id)
	if i < 0 {
		return fmt.Errorf("no segment %s", id)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("segment text cannot be empty")
	}
	s.Segments[i].Text = strings.TrimSpace(text)
	s.Segments[i].Edited = true
	return nil
}

// CycleSpeaker reassigns a segment to the next speaker in the session's
// roster, wrapping around. Unknown speakers start from the roster head.
func (s *Session) CycleSpeaker(id string) error {
	i := s.SegmentByID(id)
	if i < 0 {
		return fmt.Errorf("no segment %s", id)
	}
	if len(s.Speakers) == 0 {
		return fmt.Errorf("session has no speaker roster")
	}
	cur := -1
	for j, sp := range s.Speakers {
		if sp == s.Segments[i].Speaker {
			cur = j
			break
		}
	}
	s.Segments[i].Speaker = s.Speakers[(cur+1)%len(s.Speakers)]
	s.Segments[i].Edited = true
	return nil
}

// SegmentAt returns the index of the segment covering offset t, or -1
// when t falls in a gap or outside the session.
func (s *Session) SegmentAt(t time.Duration) int {
	n := sort.Search(len(s.Segments), func(i int) bool {
		return s.Segments[i].End > t
	})
	if n < len(s.Segments) && s.Segments[n].Start <= t {
		return n
	}
	return -1
}

func (s *Session) SpeakerTurns(speaker string) int {
	n := 0
	for _, seg := range s.Segments {
		if seg.Speaker == speaker {
			n++
		}
	}
	return n
}

// FormatTimestamp renders d as HH:MM:SS or MM:SS for short media.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}

// FormatCue renders a segment's time range for list rows.
func FormatCue(seg Segment) string {
	return FormatTimestamp(seg.Start) + "–" + FormatTimestamp(seg.End)
}

func NewSegmentID() string { return uuid.NewString() }
