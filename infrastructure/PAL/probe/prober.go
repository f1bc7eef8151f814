package probe

import (
	"bufio"
	"context"
	"gwswitch/application/logging"
	"gwswitch/domain/gateway"
	"gwswitch/infrastructure/PAL/exec_commander"
	"strings"

	"golang.org/x/sync/singleflight"
)

// OutputParser extracts a gateway address from diagnostic command output.
type OutputParser func(output string) (string, bool)

// DiagnosticProber runs an OS network diagnostic command and extracts the
// active default gateway from its stdout.
type DiagnosticProber struct {
	commander exec_commander.Commander
	logger    logging.Logger
	parse     OutputParser
	name      string
	args      []string
	group     singleflight.Group
}

func NewDiagnosticProber(
	commander exec_commander.Commander,
	logger logging.Logger,
	parse OutputParser,
	name string,
	args ...string,
) *DiagnosticProber {
	return &DiagnosticProber{
		commander: commander,
		logger:    logger,
		parse:     parse,
		name:      name,
		args:      args,
	}
}

// Probe reports ok=false when the command fails or its output names no gateway.
// Concurrent callers share one subprocess.
func (p *DiagnosticProber) Probe(ctx context.Context) (string, bool) {
	v, _, _ := p.group.Do(p.name, func() (any, error) {
		out, err := p.commander.Output(ctx, p.name, p.args...)
		if err != nil {
			p.logger.Printf("gateway probe: %s: %v", p.name, err)
			return "", nil
		}
		address, _ := p.parse(string(out))
		return address, nil
	})
	address, _ := v.(string)
	return address, address != ""
}

// MarkerParser builds an OutputParser over ParseGateway.
func MarkerParser(markers ...string) OutputParser {
	return func(output string) (string, bool) {
		return ParseGateway(output, markers)
	}
}

// ParseDefaultRoute reads `ip -4 route show default` output such as
// "default via 192.168.1.1 dev eth0 proto dhcp metric 100".
func ParseDefaultRoute(output string) (string, bool) {
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 || fields[0] != "default" {
			continue
		}
		for i := 1; i < len(fields)-1; i++ {
			if fields[i] == "via" && gateway.IsIPv4Shape(fields[i+1]) {
				return fields[i+1], true
			}
		}
	}
	return "", false
}

// ParseGateway returns the value after the first ':' on the first line that
// contains one of markers (case-insensitive) and holds an IPv4 address.
// When the marker line carries an IPv6 value, the indented continuation lines
// below it are tried, since ipconfig lists the IPv6 gateway first on
// dual-stack hosts.
func ParseGateway(output string, markers []string) (string, bool) {
	sc := bufio.NewScanner(strings.NewReader(output))
	continuation := false
	for sc.Scan() {
		line := sc.Text()
		if hasMarker(line, markers) {
			continuation = false
			_, value, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			value = strings.TrimSpace(value)
			if gateway.IsIPv4Shape(value) {
				return value, true
			}
			continuation = value != "" && value != "--"
			continue
		}
		if !continuation {
			continue
		}
		value := strings.TrimSpace(line)
		if !isContinuation(line, value) {
			continuation = false
			continue
		}
		if gateway.IsIPv4Shape(value) {
			return value, true
		}
	}
	return "", false
}

func hasMarker(line string, markers []string) bool {
	lower := strings.ToLower(line)
	for _, marker := range markers {
		if marker != "" && strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// isContinuation reports whether line is a bare indented value with no label.
func isContinuation(line, value string) bool {
	if value == "" || strings.ContainsAny(value, " \t") {
		return false
	}
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}
