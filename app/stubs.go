// Package app wires the tabs, commands, and fake engines into the core
// shell.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The engines are stubs: delayed message chains standing in for the
// real transcription, TTS, and export pipelines.

type transcribeProgressMsg struct {
	Chunk  int
	Chunks int
}

type transcribeDoneMsg struct{}

type regenerateDoneMsg struct {
	SegmentID string
	PaddedMs  int
}

type exportTickMsg struct {
	Progress float64
}

type exportDoneMsg struct {
	Path string
}

type playTickMsg time.Time

const (
	transcribeChunks     = 4
	transcribeChunkDelay = 350 * time.Millisecond
	regenerateDelay      = 900 * time.Millisecond
	exportTickDelay      = 250 * time.Millisecond
	exportTickStep       = 0.2
	playTickInterval     = 200 * time.Millisecond
)

// transcribeCmd emits one chunk-progress message after a canned delay.
// The tab reissues it until every chunk is in, then gets a done message.
func transcribeCmd(chunk int) tea.Cmd {
	return tea.Tick(transcribeChunkDelay, func(time.Time) tea.Msg {
		if chunk > transcribeChunks {
			return transcribeDoneMsg{}
		}
		return transcribeProgressMsg{Chunk: chunk, Chunks: transcribeChunks}
	})
}

// regenerateCmd fakes per-segment voice resynthesis. The padded-ms
// figure mimics fitting the new take back into the original time slot.
func regenerateCmd(segmentID string, target time.Duration) tea.Cmd {
	return tea.Tick(regenerateDelay, func(time.Time) tea.Msg {
		pad := int(target.Milliseconds() % 120)
		return regenerateDoneMsg{SegmentID: segmentID, PaddedMs: pad}
	})
}

// exportTickCmd advances a fake export job by one step.
func exportTickCmd(progress float64, path string) tea.Cmd {
	return tea.Tick(exportTickDelay, func(time.Time) tea.Msg {
		if progress >= 1 {
			return exportDoneMsg{Path: path}
		}
		return exportTickMsg{Progress: progress}
	})
}

func playTickCmd() tea.Cmd {
	return tea.Tick(playTickInterval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}
