package rolling

// ContextWindow is a bounded accumulator of summary text. It is a value
// type with persistent updates: Add and Replace return a new window and
// never mutate the receiver. The rolling pipeline is strictly sequential,
// so there is always exactly one live version; the value discipline just
// keeps update sites explicit.
//
// The capacity bound is enforced by caller discipline (check CanFit
// before Add), not by the type itself: the pipeline deliberately appends
// the pending summary after compressing, even if the summary alone would
// overflow.
type ContextWindow struct {
	content string
	maxSize int
}

// NewContextWindow creates an empty window with the given capacity in
// characters.
func NewContextWindow(maxSize int) ContextWindow {
	return ContextWindow{maxSize: maxSize}
}

// Content returns the accumulated text.
func (w ContextWindow) Content() string {
	return w.content
}

// Size returns the accumulated text length. Invariant: Size() == len(Content()).
func (w ContextWindow) Size() int {
	return len(w.content)
}

// MaxSize returns the window capacity.
func (w ContextWindow) MaxSize() int {
	return w.maxSize
}

// IsFull reports whether the window is at or over capacity.
func (w ContextWindow) IsFull() bool {
	return w.Size() >= w.maxSize
}

// CanFit reports whether text fits in the remaining space.
func (w ContextWindow) CanFit(text string) bool {
	return w.Size()+len(text) <= w.maxSize
}

// Add returns a window with text appended, joined to existing content
// with a blank-line separator.
func (w ContextWindow) Add(text string) ContextWindow {
	if w.content == "" {
		return ContextWindow{content: text, maxSize: w.maxSize}
	}
	return ContextWindow{content: w.content + "\n\n" + text, maxSize: w.maxSize}
}

// Replace returns a window whose content is replaced wholesale, keeping
// the capacity. Used after compression.
func (w ContextWindow) Replace(content string) ContextWindow {
	return ContextWindow{content: content, maxSize: w.maxSize}
}
