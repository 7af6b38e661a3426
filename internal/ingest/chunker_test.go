package ingest

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunker_Chunk_Empty(t *testing.T) {
	chunker := NewChunker()

	if got := chunker.Chunk(""); got != nil {
		t.Errorf("Chunk(\"\") = %v, want nil", got)
	}
	if got := chunker.Chunk("   \n  "); got != nil {
		t.Errorf("Chunk(whitespace) = %v, want nil", got)
	}
}

func TestChunker_Chunk_ShortTextSingleChunk(t *testing.T) {
	chunker := NewChunker()

	text := "Revenue grew 12% year over year."
	got := chunker.Chunk(text)

	if len(got) != 1 {
		t.Fatalf("Chunk() returned %d chunks, want 1", len(got))
	}
	if got[0] != text {
		t.Errorf("Chunk()[0] = %q, want %q", got[0], text)
	}
}

func TestChunker_Chunk_RespectsMaxSize(t *testing.T) {
	chunker := NewChunker()

	text := strings.Repeat("a", 2000)
	got := chunker.Chunk(text)

	if len(got) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(got))
	}
	for i, chunk := range got {
		if n := utf8.RuneCountInString(chunk); n > chunkSize {
			t.Errorf("chunk[%d] size = %d runes, exceeds max %d", i, n, chunkSize)
		}
	}
}

func TestChunker_Chunk_OverlapWithoutBoundaries(t *testing.T) {
	chunker := NewChunker()

	// No paragraph, newline or sentence boundaries: hard splits with overlap.
	text := strings.Repeat("a", 2000)
	got := chunker.Chunk(text)

	if len(got) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(got))
	}

	first := []rune(got[0])
	second := []rune(got[1])
	tail := string(first[len(first)-chunkOverlap:])
	head := string(second[:chunkOverlap])
	if tail != head {
		t.Error("consecutive chunks should share overlapping runes")
	}
}

func TestChunker_Chunk_SnapsToParagraphBoundary(t *testing.T) {
	chunker := NewChunker()

	para1 := strings.Repeat("a", 650)
	para2 := strings.Repeat("b", 650)
	got := chunker.Chunk(para1 + "\n\n" + para2)

	if len(got) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(got))
	}
	if got[0] != para1 {
		t.Errorf("first chunk should end at the paragraph boundary, got %d runes", utf8.RuneCountInString(got[0]))
	}
	last := got[len(got)-1]
	if !strings.HasSuffix(last, "b") || strings.Contains(last, "a") {
		t.Errorf("last chunk should hold only the second paragraph")
	}
}

func TestChunker_Chunk_SnapsToSentenceBoundary(t *testing.T) {
	chunker := NewChunker()

	// A long run of sentences with no newlines forces sentence snapping.
	sentence := "The quarter closed ahead of guidance. "
	text := strings.Repeat(sentence, 40) // ~1520 runes

	got := chunker.Chunk(text)
	if len(got) < 2 {
		t.Fatalf("Chunk() returned %d chunks, want at least 2", len(got))
	}
	if !strings.HasSuffix(got[0], "guidance.") {
		t.Errorf("first chunk should end on a sentence boundary, got suffix %q", got[0][len(got[0])-20:])
	}
}

func TestChunker_ChunkMarkdown_FlattensSyntax(t *testing.T) {
	chunker := NewChunker()

	content := []byte("# Q3 Results\n\nRevenue was **$2.5 billion** this quarter.\n\n- margin up\n- churn down\n")
	got := chunker.ChunkMarkdown(content)

	if len(got) != 1 {
		t.Fatalf("ChunkMarkdown() returned %d chunks, want 1", len(got))
	}

	text := got[0]
	if strings.Contains(text, "#") || strings.Contains(text, "**") {
		t.Errorf("flattened text should not contain markdown markers, got %q", text)
	}
	for _, want := range []string{"Q3 Results", "$2.5 billion", "margin up", "churn down"} {
		if !strings.Contains(text, want) {
			t.Errorf("flattened text missing %q: %q", want, text)
		}
	}
}

func TestChunker_ChunkMarkdown_Empty(t *testing.T) {
	chunker := NewChunker()

	if got := chunker.ChunkMarkdown(nil); got != nil {
		t.Errorf("ChunkMarkdown(nil) = %v, want nil", got)
	}
}
