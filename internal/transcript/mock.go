package transcript

import "time"

// NewMockSession builds the demo session used until real project files
// are wired in. Two speakers, a dozen turns, a small gap mid-way.
func NewMockSession() *Session {
	mk := func(speaker string, start, end float64, text string, conf float64) Segment {
		return Segment{
			ID:         NewSegmentID(),
			Speaker:    speaker,
			Start:      time.Duration(start * float64(time.Second)),
			End:        time.Duration(end * float64(time.Second)),
			Text:       text,
			Confidence: conf,
		}
	}
	segs := []Segment{
		mk("Ana", 0.0, 4.2, "Welcome back to the show, today we're talking about field recordings.", 0.97),
		mk("Ben", 4.2, 9.8, "Thanks for having me. I brought a few clips from the coast trip.", 0.94),
		mk("Ana", 9.8, 14.1, "Let's start with the one you sent me last week, the harbour at dawn.", 0.96),
		mk("Ben", 14.1, 22.5, "So that one was recorded on a pair of omnis about knee height, maybe ten metres from the water.", 0.88),
		mk("Ana", 22.5, 26.0, "You can really hear the rigging against the masts.", 0.95),
		mk("Ben", 26.0, 33.4, "Right, and there's a ferry horn at around the two minute mark that I almost cut, but it anchors the whole scene.", 0.91),
		mk("Ana", 34.8, 39.2, "We'll play the full clip after the break.", 0.98),
		mk("Ben", 39.2, 47.0, "Before that, one technical note, the low rumble you hear isn't wind, it's the generator on the fish market across the quay.", 0.83),
		mk("Ana", 47.0, 51.3, "Which you decided to keep in.", 0.97),
		mk("Ben", 51.3, 58.9, "I did. Cleaning it out flattened the recording, the room tone of a place is part of the place.", 0.9),
		mk("Ana", 58.9, 63.0, "Well put. Okay, rolling the clip now.", 0.96),
		mk("Ben", 63.0, 66.4, "Turn it up.", 0.93),
	}
	return &Session{
		ID:               NewSegmentID(),
		Title:            "harbour-at-dawn",
		MediaPath:        "recordings/harbour-at-dawn.wav",
		MediaFingerprint: Fingerprint("recordings/harbour-at-dawn.wav", 48271360, time.Unix(1756000000, 0)),
		Duration:         66400 * time.Millisecond,
		Speakers:         []string{"Ana", "Ben"},
		Segments:         segs,
	}
}
