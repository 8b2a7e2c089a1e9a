package filesearch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPipelineSkipsUnsetCriteria(t *testing.T) {
	pipeline, err := buildPipeline(&Criteria{})
	require.NoError(t, err)
	assert.Empty(t, pipeline)

	pipeline, err = buildPipeline(&Criteria{
		NamePattern: "*.go",
		Extensions:  []string{".go"},
		MinSize:     ptr(int64(1)),
		Content:     "package",
	})
	require.NoError(t, err)
	assert.Len(t, pipeline, 4)
}

func TestBuildPipelineInvalidPattern(t *testing.T) {
	_, err := buildPipeline(&Criteria{NamePattern: "["})
	assert.ErrorContains(t, err, "invalid name pattern")
}

func TestNamePredicate(t *testing.T) {
	tests := []struct {
		name          string
		pattern       string
		fileName      string
		caseSensitive bool
		want          bool
	}{
		{"star run", "*.txt", "notes.txt", false, true},
		{"star rejects other extension", "*.txt", "notes.md", false, false},
		{"question mark single char", "file?.txt", "file1.txt", false, true},
		{"question mark needs a char", "file?.txt", "file.txt", false, false},
		{"folded by default", "README*", "readme.md", false, true},
		{"case sensitive", "README*", "readme.md", true, false},
		{"exact name", "test.txt", "test.txt", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := namePredicate(tt.pattern, tt.caseSensitive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p(&FileEntry{Name: tt.fileName}))
		})
	}
}

func TestExtensionPredicate(t *testing.T) {
	p := extensionPredicate([]string{".pdf", ".TXT"}, false)
	assert.True(t, p(&FileEntry{Name: "report.PDF"}))
	assert.True(t, p(&FileEntry{Name: "notes.txt"}))
	assert.False(t, p(&FileEntry{Name: "image.png"}))

	// The leading dot is part of the comparison, so a bare "pdf" set never
	// matches.
	p = extensionPredicate([]string{"pdf"}, false)
	assert.False(t, p(&FileEntry{Name: "report.pdf"}))

	p = extensionPredicate([]string{".pdf"}, true)
	assert.False(t, p(&FileEntry{Name: "report.PDF"}))
	assert.True(t, p(&FileEntry{Name: "report.pdf"}))
}

func TestSizePredicate(t *testing.T) {
	p := sizePredicate(ptr(int64(10)), ptr(int64(20)))
	assert.False(t, p(&FileEntry{Size: 9}))
	assert.True(t, p(&FileEntry{Size: 10}))
	assert.True(t, p(&FileEntry{Size: 20}))
	assert.False(t, p(&FileEntry{Size: 21}))

	p = sizePredicate(nil, ptr(int64(5)))
	assert.True(t, p(&FileEntry{Size: 0}))
	assert.False(t, p(&FileEntry{Size: 6}))
}

func TestModifiedPredicate(t *testing.T) {
	cutoff := time.Now().Add(-24 * time.Hour)
	p := modifiedPredicate(cutoff)

	assert.True(t, p(&FileEntry{ModTime: time.Now()}))
	assert.True(t, p(&FileEntry{ModTime: cutoff}))
	assert.False(t, p(&FileEntry{ModTime: cutoff.Add(-time.Minute)}))
}

func TestContentPredicate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello World"), 0o644))

	t.Run("folded match", func(t *testing.T) {
		p := contentPredicate("hello world", false)
		assert.True(t, p(&FileEntry{Path: path}))
	})

	t.Run("case sensitive", func(t *testing.T) {
		p := contentPredicate("hello world", true)
		assert.False(t, p(&FileEntry{Path: path}))
	})

	t.Run("missing file is a non-match", func(t *testing.T) {
		p := contentPredicate("hello", false)
		assert.False(t, p(&FileEntry{Path: filepath.Join(dir, "gone.txt")}))
	})

	t.Run("binary file is a non-match", func(t *testing.T) {
		binPath := filepath.Join(dir, "blob.bin")
		require.NoError(t, os.WriteFile(binPath, []byte("hello\x00world"), 0o644))
		p := contentPredicate("hello", false)
		assert.False(t, p(&FileEntry{Path: binPath}))
	})
}

func TestIsBinary(t *testing.T) {
	assert.False(t, isBinary([]byte("plain text")))
	assert.False(t, isBinary(nil))
	assert.True(t, isBinary([]byte{'a', 0, 'b'}))

	// A NUL beyond the sniff window is not detected; only the head decides.
	tail := append(make([]byte, binarySniffLen), 0)
	for i := 0; i < binarySniffLen; i++ {
		tail[i] = 'x'
	}
	assert.False(t, isBinary(tail))
}

func TestMatchesShortCircuits(t *testing.T) {
	calls := 0
	counting := func(result bool) predicate {
		return func(*FileEntry) bool {
			calls++
			return result
		}
	}

	pipeline := []predicate{counting(true), counting(false), counting(true)}
	assert.False(t, matches(pipeline, &FileEntry{}))
	assert.Equal(t, 2, calls)

	calls = 0
	pipeline = []predicate{counting(true), counting(true)}
	assert.True(t, matches(pipeline, &FileEntry{}))
	assert.Equal(t, 2, calls)
}
