package gateway

import "strings"

// Format identifies which of the supported line layouts produced a Candidate.
type Format int

const (
	// FormatSpaced is "<label> <address>".
	FormatSpaced Format = iota
	// FormatDashed is "<label> - <address>".
	FormatDashed
	// FormatSlashed is "<address> / <label> [/ <provider> [/ <speed>]]".
	FormatSlashed
)

// Candidate is one configured switch target. Address is the only identity;
// Label and DisplayName are presentation-only.
type Candidate struct {
	Label       string
	Address     string
	Provider    string
	Speed       string
	DisplayName string
	Format      Format
}

// Line renders the candidate back in the layout it was read from.
func (c Candidate) Line() string {
	switch c.Format {
	case FormatDashed:
		return c.Label + " - " + c.Address
	case FormatSlashed:
		return slashedDisplayName(c.Address, c.Label, c.Provider, c.Speed)
	default:
		return c.Label + " " + c.Address
	}
}

// Store is the ordered candidate list; order follows the source lines.
// An empty Store is a valid state.
type Store struct {
	Candidates []Candidate
	// Skipped counts non-blank lines that matched no supported layout.
	Skipped int
}

func (s Store) Len() int {
	return len(s.Candidates)
}

// Find returns the first candidate whose address equals address.
func (s Store) Find(address string) (Candidate, bool) {
	for _, c := range s.Candidates {
		if c.Address == address {
			return c, true
		}
	}
	return Candidate{}, false
}

// FindByLabel matches a label case-insensitively. Used by the CLI, where the
// operator may type either the provider name or the address.
func (s Store) FindByLabel(label string) (Candidate, bool) {
	for _, c := range s.Candidates {
		if strings.EqualFold(c.Label, label) {
			return c, true
		}
	}
	return Candidate{}, false
}

func (s Store) Addresses() []string {
	out := make([]string, 0, len(s.Candidates))
	for _, c := range s.Candidates {
		out = append(out, c.Address)
	}
	return out
}

// Lines renders every candidate, one per line, suitable for writing back to disk.
func (s Store) Lines() []string {
	out := make([]string, 0, len(s.Candidates))
	for _, c := range s.Candidates {
		out = append(out, c.Line())
	}
	return out
}
