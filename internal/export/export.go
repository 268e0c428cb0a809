// Package export renders a session into subtitle and text formats.
// Writing the result anywhere is the caller's problem; the shell only
// previews it.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"scribedeck/internal/transcript"
)

// Options selects the output format and which per-segment fields to
// include where the format allows a choice.
type Options struct {
	Format            string // srt, vtt, txt, json
	IncludeSpeakers   bool
	IncludeTimestamps bool
}

var Formats = []string{"srt", "vtt", "txt", "json"}

// NextFormat cycles through the supported formats.
func NextFormat(format string) string {
	for i, f := range Formats {
		if f == format {
			return Formats[(i+1)%len(Formats)]
		}
	}
	return Formats[0]
}

// Render produces the full export document for sess.
func Render(sess *transcript.Session, opts Options) (string, error) {
	switch opts.Format {
	case "srt":
		return renderSRT(sess, opts), nil
	case "vtt":
		return renderVTT(sess, opts), nil
	case "txt":
		return renderTXT(sess, opts), nil
	case "json":
		return renderJSON(sess)
	default:
		return "", fmt.Errorf("unsupported export format %q", opts.Format)
	}
}

func srtTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

func vttTime(d time.Duration) string {
	return strings.ReplaceAll(srtTime(d), ",", ".")
}

func cueText(seg transcript.Segment, withSpeaker bool) string {
	if withSpeaker && seg.Speaker != "" {
		return seg.Speaker + ": " + seg.Text
	}
	return seg.Text
}

func renderSRT(sess *transcript.Session, opts Options) string {
	var b strings.Builder
	for i, seg := range sess.Segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", i+1, srtTime(seg.Start), srtTime(seg.End), cueText(seg, opts.IncludeSpeakers))
	}
	return b.String()
}

func renderVTT(sess *transcript.Session, opts Options) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, seg := range sess.Segments {
		fmt.Fprintf(&b, "%s --> %s\n", vttTime(seg.Start), vttTime(seg.End))
		if opts.IncludeSpeakers && seg.Speaker != "" {
			fmt.Fprintf(&b, "<v %s>%s\n\n", seg.Speaker, seg.Text)
		} else {
			fmt.Fprintf(&b, "%s\n\n", seg.Text)
		}
	}
	return b.String()
}

func renderTXT(sess *transcript.Session, opts Options) string {
	var b strings.Builder
	for _, seg := range sess.Segments {
		parts := make([]string, 0, 3)
		if opts.IncludeTimestamps {
			parts = append(parts, "["+transcript.FormatTimestamp(seg.Start)+"]")
		}
		if opts.IncludeSpeakers && seg.Speaker != "" {
			parts = append(parts, seg.Speaker+":")
		}
		parts = append(parts, seg.Text)
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}
	return b.String()
}

type jsonSegment struct {
	ID         string  `json:"id"`
	Speaker    string  `json:"speaker"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Edited     bool    `json:"edited,omitempty"`
}

type jsonDocument struct {
	Title       string        `json:"title"`
	Media       string        `json:"media"`
	Fingerprint string        `json:"fingerprint"`
	Duration    float64       `json:"duration"`
	Speakers    []string      `json:"speakers"`
	Segments    []jsonSegment `json:"segments"`
}

func renderJSON(sess *transcript.Session) (string, error) {
	doc := jsonDocument{
		Title:       sess.Title,
		Media:       sess.MediaPath,
		Fingerprint: sess.MediaFingerprint,
		Duration:    sess.Duration.Seconds(),
		Speakers:    sess.Speakers,
		Segments:    make([]jsonSegment, len(sess.Segments)),
	}
	for i, seg := range sess.Segments {
		doc.Segments[i] = jsonSegment{
			ID:         seg.ID,
			Speaker:    seg.Speaker,
			Start:      seg.Start.Seconds(),
			End:        seg.End.Seconds(),
			Text:       seg.Text,
			Confidence: seg.Confidence,
			Edited:     seg.Edited,
		}
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding transcript json: %w", err)
	}
	return string(out) + "\n", nil
}
