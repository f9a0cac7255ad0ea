package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/fwdgen/internal/models"
)

func texts(lines []models.DeclarationLine) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestLines(t *testing.T) {
	lines := Lines("a\r\nb\n\nc", 5)

	assert.Equal(t, []string{"a", "b", "", "c"}, texts(lines))
	assert.Equal(t, 5, lines[0].Line)
	assert.Equal(t, 8, lines[3].Line)
}

func TestNormalize(t *testing.T) {
	lines := []models.DeclarationLine{
		{Text: "  void close();  ", Line: 1},
		{Text: "", Line: 2},
		{Text: "   ", Line: 3},
		{Text: "public:", Line: 4},
		{Text: ";", Line: 5},
		{Text: "\tint read(char* buf, int n) const;", Line: 6},
	}

	got := Normalize(lines)

	assert.Equal(t, []string{"void close();", "int read(char* buf, int n) const;"}, texts(got))
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 6, got[1].Line)
}

func TestJoinTemplateLines(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "clause joined with next line",
			input: []string{"template <typename T>", "  T get(int id)", "void close();"},
			want:  []string{"template <typename T> T get(int id)", "void close();"},
		},
		{
			name:  "clause already on the declaration line",
			input: []string{"template <typename T> T get(int id);", "void close();"},
			want:  []string{"template <typename T> T get(int id);", "void close();"},
		},
		{
			name:  "nested angle brackets",
			input: []string{"template <typename T, typename A = std::allocator<T>>", "T get();"},
			want:  []string{"template <typename T, typename A = std::allocator<T>> T get();"},
		},
		{
			name:  "only adjacent line is joined",
			input: []string{"template <typename T>", "", "T get();"},
			want:  []string{"template <typename T> ", "T get();"},
		},
		{
			name:  "clause on last line stays alone",
			input: []string{"void close();", "template <typename T>"},
			want:  []string{"void close();", "template <typename T>"},
		},
		{
			name:  "identifier starting with template is not a clause",
			input: []string{"templated_t make();", "void close();"},
			want:  []string{"templated_t make();", "void close();"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []models.DeclarationLine
			for i, s := range tt.input {
				lines = append(lines, models.DeclarationLine{Text: s, Line: i + 1})
			}
			assert.Equal(t, tt.want, texts(JoinTemplateLines(lines)))
		})
	}
}
