package editor

// GutterSeparator separates the line number from the text.
const GutterSeparator = "  "

// TooSmallMessage is the only thing rendered while the terminal is below
// the minimum size.
const TooSmallMessage = "Terminal too small"

// Options controls the editor layout.
type Options struct {
	// LineNumberWidth is the width line numbers are right-aligned to.
	LineNumberWidth int
	// Margin is the number of cells the cursor keeps from each viewport
	// edge before the viewport scrolls.
	Margin int
}

// DefaultOptions returns the stock layout: five-digit line numbers and a
// two-cell margin.
func DefaultOptions() Options {
	return Options{LineNumberWidth: 5, Margin: 2}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.LineNumberWidth <= 0 {
		o.LineNumberWidth = d.LineNumberWidth
	}
	if o.Margin < 0 {
		o.Margin = d.Margin
	}
	return o
}

// GutterWidth is the number of cells left of the first text column while
// every line number fits in LineNumberWidth.
func (o Options) GutterWidth() int {
	return o.LineNumberWidth + len(GutterSeparator)
}

// MinSize returns the smallest terminal the editor renders text into while
// every line number fits in LineNumberWidth.
func (o Options) MinSize() (width, height int) {
	return o.GutterWidth() + 2*o.Margin + 1, 2*o.Margin + 1
}
