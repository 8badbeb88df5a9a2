package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single word", "infosys", "Infosys"},
		{"two words", "asha verma", "Asha Verma"},
		{"already capitalized", "Asha Verma", "Asha Verma"},
		{"all caps preserved", "IIT bombay", "IIT Bombay"},
		{"mixed whitespace", "  new   delhi ", "  New   Delhi "},
		{"empty string", "", ""},
		{"whitespace only", "   ", "   "},
		{"leading digit unchanged", "3rd street", "3rd Street"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CapitalizeWords(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"commas", "Java, Python, Go", []string{"Java", "Python", "Go"}},
		{"oxford comma with and", "Java, Python, and Leadership", []string{"Java", "Python", "Leadership"}},
		{"bare and", "Java and Python", []string{"Java", "Python"}},
		{"hindi conjunction", "जावा और पाइथन", []string{"जावा", "पाइथन"}},
		{"single item", "Kubernetes", []string{"Kubernetes"}},
		{"empty tokens dropped", ", , Java,,", []string{"Java"}},
		{"and inside a word is kept", "Pandas, Golang", []string{"Pandas", "Golang"}},
		{"empty input", "", nil},
		{"whitespace only", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.input))
		})
	}
}
