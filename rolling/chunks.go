package rolling

import "iter"

// Chunk is a non-overlapping segment of the source text.
type Chunk struct {
	Start int    // character offset of the chunk in the source
	Text  string
}

// Chunks returns a lazy, restartable sequence of non-overlapping chunks
// covering text left to right. The stride equals chunkSize, so the
// concatenation of all chunk texts equals the source exactly; the final
// chunk may be shorter. A non-positive chunkSize yields nothing.
func Chunks(text string, chunkSize int) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		if chunkSize <= 0 {
			return
		}
		for start := 0; start < len(text); start += chunkSize {
			end := start + chunkSize
			if end > len(text) {
				end = len(text)
			}
			if !yield(Chunk{Start: start, Text: text[start:end]}) {
				return
			}
		}
	}
}

// ChunkCount returns how many chunks Chunks will yield for a text of the
// given length.
func ChunkCount(textLen, chunkSize int) int {
	if chunkSize <= 0 || textLen <= 0 {
		return 0
	}
	return (textLen + chunkSize - 1) / chunkSize
}
