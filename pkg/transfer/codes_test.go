package transfer

import (
	"strings"
	"testing"
)

func TestRoomWords(t *testing.T) {
	if len(roomWords) == 0 {
		t.Fatal("word list is empty")
	}

	seen := make(map[string]bool)
	for i, word := range roomWords {
		if word != strings.ToLower(word) {
			t.Errorf("word %d not lowercase: %s", i, word)
		}
		for _, c := range word {
			if c < 'a' || c > 'z' {
				t.Errorf("word %d contains non-alphabetic character: %s", i, word)
				break
			}
		}
		if seen[word] {
			t.Errorf("duplicate word %d: %s", i, word)
		}
		seen[word] = true
	}
}

func TestNewCodeGenerator(t *testing.T) {
	tests := []struct {
		name      string
		wordCount int
		want      int
	}{
		{"zero falls back", 0, 3},
		{"negative falls back", -1, 3},
		{"one falls back", 1, 3},
		{"minimum", 2, 2},
		{"maximum", 5, 5},
		{"above maximum falls back", 9, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewCodeGenerator(tt.wordCount)
			if g.wordCount != tt.want {
				t.Errorf("wordCount = %d, want %d", g.wordCount, tt.want)
			}
		})
	}
}

func TestGenerateAndValidate(t *testing.T) {
	g := NewCodeGenerator(3)
	for i := 0; i < 20; i++ {
		code, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !g.Validate(code) {
			t.Errorf("generated code does not validate: %s", code)
		}
		if len(strings.Split(code, codeSep)) != 3 {
			t.Errorf("code has wrong word count: %s", code)
		}
	}
}

func TestValidateRejectsBadCodes(t *testing.T) {
	g := NewCodeGenerator(3)
	for _, code := range []string{
		"",
		"amber-cedar",           // too few words
		"amber-cedar-opal-jade", // too many
		"amber-cedar-notaword",  // unknown word
		"amber cedar 12345",     // digits
	} {
		if g.Validate(code) {
			t.Errorf("Validate(%q) = true, want false", code)
		}
	}
}

func TestNormalize(t *testing.T) {
	g := NewCodeGenerator(3)
	if got := Normalize("  Amber Cedar OPAL "); got != "amber-cedar-opal" {
		t.Errorf("Normalize = %q", got)
	}
	if !g.Validate("Amber_Cedar_Opal") {
		t.Error("validation should accept separator variants")
	}
}
