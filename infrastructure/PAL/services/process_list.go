package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"gwswitch/infrastructure/PAL/exec_commander"
	"path/filepath"
	"strings"
)

// ListParser turns command output into the names of running units.
type ListParser func(output string) ([]string, error)

// CommandCheck lists running services or processes with an OS command.
type CommandCheck struct {
	commander exec_commander.Commander
	parse     ListParser
	name      string
	args      []string
}

func NewCommandCheck(commander exec_commander.Commander, parse ListParser, name string, args ...string) *CommandCheck {
	return &CommandCheck{
		commander: commander,
		parse:     parse,
		name:      name,
		args:      args,
	}
}

func (c *CommandCheck) Name() string {
	return c.name
}

func (c *CommandCheck) AnyRunning(ctx context.Context, names []string) (bool, error) {
	out, err := c.commander.Output(ctx, c.name, c.args...)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", c.name, strings.Join(c.args, " "), err)
	}
	running, err := c.parse(string(out))
	if err != nil {
		return false, fmt.Errorf("%s: %w", c.name, err)
	}
	return containsAny(running, names), nil
}

// ParseTasklistCSV reads `tasklist /FO CSV /NH`. Image names are reported
// both with and without their .exe suffix.
func ParseTasklistCSV(output string) ([]string, error) {
	if strings.HasPrefix(strings.TrimSpace(output), "INFO:") {
		return nil, nil
	}
	r := csv.NewReader(strings.NewReader(output))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, record := range records {
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		image := strings.TrimSpace(record[0])
		names = append(names, image)
		if trimmed, ok := cutSuffixFold(image, ".exe"); ok {
			names = append(names, trimmed)
		}
	}
	return names, nil
}

// ParseSystemdUnits reads `systemctl list-units --type=service --state=running
// --no-legend --plain`, reporting units with and without the .service suffix.
func ParseSystemdUnits(output string) ([]string, error) {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		unit := fields[0]
		names = append(names, unit)
		if trimmed, ok := strings.CutSuffix(unit, ".service"); ok {
			names = append(names, trimmed)
		}
	}
	return names, nil
}

// ParseLaunchctlList reads `launchctl list`; rows without a PID are loaded
// but not running.
func ParseLaunchctlList(output string) ([]string, error) {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] == "PID" || fields[0] == "-" {
			continue
		}
		names = append(names, fields[2])
	}
	return names, nil
}

// ParseProcessNames reads one command name per line, as printed by `ps -o comm=`.
func ParseProcessNames(output string) ([]string, error) {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
		if base := filepath.Base(name); base != name {
			names = append(names, base)
		}
	}
	return names, nil
}

func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) < len(suffix) || !strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}
