package gateway

import "strings"

const slashSeparator = " / "

// Parse turns configuration lines into a Store. It never fails: blank lines
// are ignored and lines matching no supported layout are counted in
// Store.Skipped and dropped.
//
// The layouts are tried in order, the first match wins:
//   - "<address> / <label> [/ <provider> [/ <speed>]]" when the line contains '/'
//   - "<label> - <address>" (split on the first '-')
//   - "<label> <address>" (split on the first space)
//
// In every layout the address must have the IPv4 dotted-quad shape. A line
// whose '-' split yields an address but no label is rejected outright.
func Parse(lines []string) Store {
	store := Store{Candidates: make([]Candidate, 0, len(lines))}
	for _, raw := range lines {
		line := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		if line == "" {
			continue
		}
		candidate, ok := parseLine(line)
		if !ok {
			store.Skipped++
			continue
		}
		store.Candidates = append(store.Candidates, candidate)
	}
	return store
}

func parseLine(line string) (Candidate, bool) {
	if strings.Contains(line, "/") {
		if candidate, ok := parseSlashed(line); ok {
			return candidate, true
		}
	}
	candidate, outcome := parseDashed(line)
	switch outcome {
	case dashedMatched:
		return candidate, true
	case dashedRejected:
		return Candidate{}, false
	}
	return parseSpaced(line)
}

type dashedOutcome int

const (
	// dashedNoMatch lets the spaced layout have a go.
	dashedNoMatch dashedOutcome = iota
	dashedMatched
	// dashedRejected is a dashed line with an address and an empty label.
	dashedRejected
)

func parseSpaced(line string) (Candidate, bool) {
	label, address, found := strings.Cut(line, " ")
	if !found {
		return Candidate{}, false
	}
	label, address = strings.TrimSpace(label), strings.TrimSpace(address)
	if label == "" || !IsIPv4Shape(address) {
		return Candidate{}, false
	}
	return Candidate{
		Label:       label,
		Address:     address,
		DisplayName: label + " " + address,
		Format:      FormatSpaced,
	}, true
}

func parseDashed(line string) (Candidate, dashedOutcome) {
	label, address, found := strings.Cut(line, "-")
	if !found {
		return Candidate{}, dashedNoMatch
	}
	label, address = strings.TrimSpace(label), strings.TrimSpace(address)
	if !IsIPv4Shape(address) {
		return Candidate{}, dashedNoMatch
	}
	if label == "" {
		return Candidate{}, dashedRejected
	}
	return Candidate{
		Label:       label,
		Address:     address,
		DisplayName: label + " - " + address,
		Format:      FormatDashed,
	}, dashedMatched
}

func parseSlashed(line string) (Candidate, bool) {
	fields := make([]string, 0, 4)
	for _, segment := range strings.Split(line, "/") {
		if s := strings.TrimSpace(segment); s != "" {
			fields = append(fields, s)
		}
	}
	if len(fields) < 2 || !IsIPv4Shape(fields[0]) {
		return Candidate{}, false
	}
	// segments past the fourth have no field to map to
	for len(fields) < 4 {
		fields = append(fields, "")
	}
	c := Candidate{
		Address:  fields[0],
		Label:    fields[1],
		Provider: fields[2],
		Speed:    fields[3],
		Format:   FormatSlashed,
	}
	c.DisplayName = slashedDisplayName(c.Address, c.Label, c.Provider, c.Speed)
	return c, true
}

func slashedDisplayName(fields ...string) string {
	nonEmpty := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, slashSeparator)
}
