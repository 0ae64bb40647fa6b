package chunker

import (
	"regexp"
	"strings"
)

const (
	DefaultMaxSize = 1000
	DefaultOverlap = 200

	// Returned as the single segment for empty input so downstream stages
	// never see an empty chunk set.
	emptyPlaceholder = "No text content found in the document"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[^.!?]+[.!?]+|[^.!?]+$`)
)

// Chunker splits extracted text into overlapping, bounded-size segments along
// sentence boundaries. Segments preserve document order; the tail of each
// closed segment seeds the next one so local context survives the boundary.
type Chunker struct {
	maxSize int
	overlap int
}

func NewChunker(maxSize, overlap int) *Chunker {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if overlap < 0 || overlap >= maxSize {
		overlap = DefaultOverlap
	}
	return &Chunker{
		maxSize: maxSize,
		overlap: overlap,
	}
}

func (c *Chunker) Chunk(text string) []string {
	cleaned := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
	if cleaned == "" {
		return []string{emptyPlaceholder}
	}

	sentences := sentenceRe.FindAllString(cleaned, -1)
	var chunks []string
	var current []rune

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		runes := []rune(sentence)

		if len(current)+len(runes) > c.maxSize {
			if len(current) > 0 {
				chunks = append(chunks, string(current))
				current = append(c.overlapTail(current), ' ')
				current = append(current, runes...)
			} else {
				// A single sentence longer than maxSize is hard-split;
				// the remainder skips maxSize-overlap runes so the seed
				// does not duplicate the overlap.
				chunks = append(chunks, string(runes[:c.maxSize]))
				current = append([]rune{}, runes[c.maxSize-c.overlap:]...)
			}
		} else {
			if len(current) > 0 {
				current = append(current, ' ')
			}
			current = append(current, runes...)
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, string(current))
	}

	if len(chunks) == 0 {
		return []string{cleaned}
	}
	return chunks
}

// overlapTail returns a copy of the last overlap runes of the closed segment.
func (c *Chunker) overlapTail(segment []rune) []rune {
	start := len(segment) - c.overlap
	if start < 0 {
		start = 0
	}
	return append([]rune{}, segment[start:]...)
}
