package transfer

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// roomWords holds short, phonetically distinct words used to build
// human-readable room codes. Keep every entry lowercase alphabetic.
var roomWords = []string{
	"amber", "anchor", "apollo", "atlas", "aurora",
	"bamboo", "beacon", "birch", "bronze", "canyon",
	"cedar", "cipher", "cobalt", "comet", "copper",
	"coral", "crimson", "crystal", "delta", "drift",
	"eagle", "echo", "ember", "falcon", "fjord",
	"garnet", "glacier", "granite", "harbor", "hazel",
	"horizon", "indigo", "iris", "jade", "jasper",
	"juniper", "lagoon", "lantern", "lunar", "maple",
	"marble", "meadow", "mesa", "nectar", "nova",
	"ocean", "onyx", "opal", "orbit", "osprey",
	"pearl", "pebble", "pine", "prism", "quartz",
	"raven", "reef", "ridge", "river", "saffron",
	"sage", "sierra", "silver", "solar", "sparrow",
	"summit", "tundra", "umber", "velvet", "violet",
	"walnut", "willow", "wren", "zenith", "zephyr",
}

const (
	minCodeWords = 2
	maxCodeWords = 5
	codeSep      = "-"
)

// CodeGenerator builds random room codes like "harbor-jade-osprey".
type CodeGenerator struct {
	wordCount int
}

// NewCodeGenerator creates a generator producing codes of wordCount words.
// Counts outside the 2..5 range fall back to 3.
func NewCodeGenerator(wordCount int) *CodeGenerator {
	if wordCount < minCodeWords || wordCount > maxCodeWords {
		wordCount = 3
	}
	return &CodeGenerator{wordCount: wordCount}
}

// Generate returns a new random code.
func (g *CodeGenerator) Generate() (string, error) {
	words := make([]string, g.wordCount)
	n := big.NewInt(int64(len(roomWords)))
	for i := range words {
		idx, err := rand.Int(rand.Reader, n)
		if err != nil {
			return "", fmt.Errorf("room code: %w", err)
		}
		words[i] = roomWords[idx.Int64()]
	}
	return strings.Join(words, codeSep), nil
}

// Normalize lowercases a code and maps spaces/underscores to the standard
// separator, so codes read aloud or retyped still match.
func Normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	code = strings.ReplaceAll(code, " ", codeSep)
	code = strings.ReplaceAll(code, "_", codeSep)
	return code
}

// Validate reports whether code is wordCount known words joined by the
// standard separator.
func (g *CodeGenerator) Validate(code string) bool {
	parts := strings.Split(Normalize(code), codeSep)
	if len(parts) != g.wordCount {
		return false
	}
	for _, p := range parts {
		if !knownWord(p) {
			return false
		}
	}
	return true
}

func knownWord(word string) bool {
	for _, w := range roomWords {
		if w == word {
			return true
		}
	}
	return false
}
