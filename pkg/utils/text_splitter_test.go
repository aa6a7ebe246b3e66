package utils

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("short document", 500, 50)
	if len(chunks) != 1 || chunks[0] != "short document" {
		t.Fatalf("expected single unmodified chunk, got %v", chunks)
	}
}

func TestSplitTextOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 12) // 120 chars
	chunks := SplitText(text, 50, 10)

	if len(chunks) < 3 {
		t.Fatalf("expected at least 3 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks[:len(chunks)-1] {
		if len(chunk) != 50 {
			t.Errorf("chunk %d: expected 50 chars, got %d", i, len(chunk))
		}
	}
	// Consecutive chunks share the overlap window.
	if !strings.HasPrefix(chunks[1], chunks[0][40:]) {
		t.Errorf("chunk 1 does not start with the tail of chunk 0")
	}
}

func TestSplitTextOverlapAtLeastChunkSize(t *testing.T) {
	text := strings.Repeat("x", 100)
	chunks := SplitText(text, 20, 20)

	if len(chunks) != 5 {
		t.Fatalf("expected 5 non-overlapping chunks, got %d", len(chunks))
	}
}
