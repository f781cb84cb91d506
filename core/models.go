package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is an immutable text under exploration. A document and its
// position index are built once per session and are read-only afterward,
// so concurrent readers need no locking.
type Document struct {
	content string
}

// NewDocument wraps text in a Document.
func NewDocument(text string) *Document {
	return &Document{content: text}
}

// Content returns the full document text.
func (d *Document) Content() string {
	return d.content
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.content)
}

// Slice returns document text between start and end character offsets.
// Out-of-range bounds are silently clamped, never an error.
func (d *Document) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.content) {
		end = len(d.content)
	}
	if start >= end {
		return ""
	}
	return d.content[start:end]
}

// SearchResult is a single search hit with its snippet, score and cursor.
// The cursor is a character offset into the document that produced the
// result and is only valid against that same document instance.
type SearchResult struct {
	Text             string
	Score            float64
	Cursor           int
	MatchedKeywords  []string
	KeywordPositions map[string][]uint32 // keyword -> token ordinals matched near this hit
}

// Task is a single long-context question-answering task.
type Task struct {
	ID         string   `json:"_id"`
	Domain     string   `json:"domain"`
	SubDomain  string   `json:"sub_domain"`
	Difficulty string   `json:"difficulty"`
	Length     string   `json:"length"`
	Question   string   `json:"question"`
	Context    string   `json:"context"`
	Choices    []string `json:"choices"`
	Answer     string   `json:"answer,omitempty"` // ground truth, present only for evaluation
}

// TaskResult is the predicted answer for a task.
type TaskResult struct {
	TaskID          string   `json:"task_id"`
	PredictedAnswer string   `json:"predicted_answer"`
	Choices         []string `json:"choices"`
}

// SessionRecord caches the final rolling context produced for a
// (question, document) pair so a re-run can skip the compression pipeline.
type SessionRecord struct {
	Id             ID
	Question       string
	DocumentLength int
	Context        string
	CreatedAt      time.Time
}

// SessionID computes the cache identity for a question asked of a document.
func SessionID(question, document string) ID {
	return IDFromContent(question + "\x00" + document)
}
