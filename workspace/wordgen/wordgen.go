// Package wordgen generates short, readable names for new workspaces.
package wordgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// adjectives describe an investigation's mood
var adjectives = []string{
	"amber", "brisk", "candid", "dusky", "early",
	"faint", "grave", "hazy", "idle", "jumpy",
	"keen", "late", "lucid", "muted", "nimble",
	"odd", "plain", "quiet", "rapid", "sharp",
	"silent", "steady", "tidy", "urgent", "vivid",
	"wary", "young", "zesty", "bright", "calm",
}

// nouns are things one finds in a test run
var nouns = []string{
	"anchor", "beacon", "cable", "signal", "echo",
	"frame", "gauge", "handshake", "index", "journal",
	"ledger", "marker", "needle", "packet", "probe",
	"queue", "relay", "socket", "trace", "uplink",
	"vector", "wave", "buffer", "cursor", "digest",
	"event", "header", "latch", "pulse", "sample",
}

// Generate returns a random "adjective-noun" pair. It returns an empty string
// when the system random source fails.
func Generate() string {
	adj, err := selectRandom(adjectives)
	if err != nil {
		return ""
	}

	noun, err := selectRandom(nouns)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("%s-%s", adj, noun)
}

// GenerateUnique returns a name not in taken, falling back to a numbered
// suffix after a few attempts.
func GenerateUnique(taken map[string]bool) string {
	for i := 0; i < 8; i++ {
		if name := Generate(); name != "" && !taken[name] {
			return name
		}
	}
	base := Generate()
	if base == "" {
		base = "workspace"
	}
	for n := 2; ; n++ {
		name := fmt.Sprintf("%s-%d", base, n)
		if !taken[name] {
			return name
		}
	}
}

// selectRandom selects a random element from a slice using crypto/rand
func selectRandom(words []string) (string, error) {
	if len(words) == 0 {
		return "", fmt.Errorf("empty word list")
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %w", err)
	}

	return words[n.Int64()], nil
}
