package widgets

// Widget is anything that can draw itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Text is the trivial widget: static lines, clipped to the box.
type Text struct {
	Lines []string
}

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, min(len(t.Lines), height))
	for i, line := range t.Lines {
		if i >= height {
			break
		}
		rows = append(rows, padRight(line, width))
	}
	return joinLines(rows)
}
