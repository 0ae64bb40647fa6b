package chunker

import (
	"strings"
	"testing"
)

func TestChunkShortText(t *testing.T) {
	c := NewChunker(1000, 200)

	chunks := c.Chunk("A single short sentence.")
	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0] != "A single short sentence." {
		t.Errorf("chunks[0] = %q", chunks[0])
	}
}

func TestChunkEmptyInput(t *testing.T) {
	c := NewChunker(1000, 200)

	tests := []string{"", "   ", "\n\t  \n"}
	for _, input := range tests {
		chunks := c.Chunk(input)
		if len(chunks) != 1 {
			t.Fatalf("Chunk(%q) len = %d, want 1", input, len(chunks))
		}
		if chunks[0] != emptyPlaceholder {
			t.Errorf("Chunk(%q) = %q, want placeholder", input, chunks[0])
		}
	}
}

func TestChunkNormalizesWhitespace(t *testing.T) {
	c := NewChunker(1000, 200)

	chunks := c.Chunk("First  line.\n\nSecond\tline.")
	if len(chunks) != 1 {
		t.Fatalf("len(chunks) = %d, want 1", len(chunks))
	}
	if chunks[0] != "First line. Second line." {
		t.Errorf("chunks[0] = %q", chunks[0])
	}
}

func TestChunkSplitsAtSentenceBoundaryWithOverlap(t *testing.T) {
	c := NewChunker(20, 5)

	chunks := c.Chunk("aaaa bbbb. cccc dddd. eeee ffff.")
	want := []string{
		"aaaa bbbb. cccc dddd.",
		"dddd. eeee ffff.",
	}
	if len(chunks) != len(want) {
		t.Fatalf("len(chunks) = %d, want %d (%q)", len(chunks), len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunks[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestChunkHardSplitsOversizeSentence(t *testing.T) {
	c := NewChunker(10, 3)

	chunks := c.Chunk("abcdefghijklmno")
	want := []string{"abcdefghij", "hijklmno"}
	if len(chunks) != len(want) {
		t.Fatalf("len(chunks) = %d, want %d (%q)", len(chunks), len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunks[%d] = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestChunkCoversAllSentences(t *testing.T) {
	c := NewChunker(50, 10)

	sentences := []string{
		"The quick brown fox jumps over the lazy dog.",
		"Pack my box with five dozen liquor jugs.",
		"How vexingly quick daft zebras jump!",
		"Is this a question?",
	}
	chunks := c.Chunk(strings.Join(sentences, " "))
	joined := strings.Join(chunks, " ")

	for _, sentence := range sentences {
		if !strings.Contains(joined, sentence) {
			t.Errorf("sentence %q missing from chunk output", sentence)
		}
	}
}

func TestNewChunkerDefaults(t *testing.T) {
	tests := []struct {
		name        string
		maxSize     int
		overlap     int
		wantMax     int
		wantOverlap int
	}{
		{"zero size", 0, 50, DefaultMaxSize, 50},
		{"negative overlap", 500, -1, 500, DefaultOverlap},
		{"overlap not below size", 100, 100, 100, DefaultOverlap},
		{"valid", 800, 100, 800, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChunker(tt.maxSize, tt.overlap)
			if c.maxSize != tt.wantMax {
				t.Errorf("maxSize = %d, want %d", c.maxSize, tt.wantMax)
			}
			if c.overlap != tt.wantOverlap {
				t.Errorf("overlap = %d, want %d", c.overlap, tt.wantOverlap)
			}
		})
	}
}
