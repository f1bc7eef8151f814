package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type gateFakeCheck struct {
	name    string
	running map[string]bool
	err     error
	calls   int
}

func (c *gateFakeCheck) Name() string { return c.name }

func (c *gateFakeCheck) AnyRunning(_ context.Context, names []string) (bool, error) {
	c.calls++
	if c.err != nil {
		return false, c.err
	}
	var running []string
	for name, up := range c.running {
		if up {
			running = append(running, name)
		}
	}
	return containsAny(running, names), nil
}

type gateTestLogger struct{ lines int }

func (l *gateTestLogger) Printf(string, ...any) { l.lines++ }

type GateMockCommander struct {
	GotName string
	GotArgs []string
	Out     []byte
	Err     error
}

func (m *GateMockCommander) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	m.GotName = name
	m.GotArgs = append([]string(nil), args...)
	return m.Out, m.Err
}

func (m *GateMockCommander) CombinedOutput(_ context.Context, _ string, _ ...string) ([]byte, error) {
	return m.Out, m.Err
}

func (m *GateMockCommander) Capture(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	return m.Out, nil, m.Err
}

func (m *GateMockCommander) Start(_ string, _ ...string) error { return nil }

func TestGate_AnyOfNRunning(t *testing.T) {
	required := []string{"KzoneClient", "KzoneSyncService", "Third"}
	for i := range required {
		running := map[string]bool{}
		for j, name := range required {
			running[name] = i == j
		}
		g := NewGate(&gateTestLogger{}, &gateFakeCheck{name: "fake", running: running})
		if !g.IsSwitchingPermitted(context.Background(), required) {
			t.Fatalf("expected gate open when only %s runs", required[i])
		}
	}
}

func TestGate_NoneRunningIsClosed(t *testing.T) {
	check := &gateFakeCheck{name: "fake", running: map[string]bool{"Other": true}}
	g := NewGate(&gateTestLogger{}, check)

	if g.IsSwitchingPermitted(context.Background(), []string{"KzoneClient", "KzoneSyncService"}) {
		t.Fatal("expected gate closed when no required service runs")
	}
}

func TestGate_CaseInsensitive(t *testing.T) {
	g := NewGate(&gateTestLogger{}, &gateFakeCheck{name: "fake", running: map[string]bool{"kzoneclient": true}})

	if !g.IsSwitchingPermitted(context.Background(), []string{"KzoneClient"}) {
		t.Fatal("expected case-insensitive match")
	}
}

func TestGate_FallsBackOnCheckError(t *testing.T) {
	logger := &gateTestLogger{}
	broken := &gateFakeCheck{name: "broken", err: errors.New("access denied")}
	fallback := &gateFakeCheck{name: "fallback", running: map[string]bool{"KzoneSyncService": true}}
	g := NewGate(logger, broken, fallback)

	if !g.IsSwitchingPermitted(context.Background(), []string{"KzoneClient", "KzoneSyncService"}) {
		t.Fatal("expected fallback check to open the gate")
	}
	if broken.calls != 1 || fallback.calls != 1 {
		t.Fatalf("expected both checks to run once, got %d and %d", broken.calls, fallback.calls)
	}
	if logger.lines != 1 {
		t.Fatalf("expected the failed check to be logged, got %d lines", logger.lines)
	}
}

func TestGate_FirstCompletedCheckDecides(t *testing.T) {
	first := &gateFakeCheck{name: "first", running: map[string]bool{}}
	second := &gateFakeCheck{name: "second", running: map[string]bool{"KzoneClient": true}}
	g := NewGate(&gateTestLogger{}, first, second)

	if g.IsSwitchingPermitted(context.Background(), []string{"KzoneClient"}) {
		t.Fatal("expected the first completed check to decide")
	}
	if second.calls != 0 {
		t.Fatalf("second check must not run, got %d calls", second.calls)
	}
}

func TestGate_AllChecksFailIsClosed(t *testing.T) {
	g := NewGate(&gateTestLogger{},
		&gateFakeCheck{name: "a", err: errors.New("unavailable")},
		&gateFakeCheck{name: "b", err: errors.New("unavailable")},
	)
	if g.IsSwitchingPermitted(context.Background(), []string{"KzoneClient"}) {
		t.Fatal("expected fail-closed when health cannot be determined")
	}
}

func TestGate_NoChecksOrNoNamesIsClosed(t *testing.T) {
	if NewGate(&gateTestLogger{}).IsSwitchingPermitted(context.Background(), []string{"KzoneClient"}) {
		t.Fatal("expected closed gate without checks")
	}
	check := &gateFakeCheck{name: "fake", running: map[string]bool{"KzoneClient": true}}
	if NewGate(&gateTestLogger{}, check).IsSwitchingPermitted(context.Background(), []string{" ", ""}) {
		t.Fatal("expected closed gate without service names")
	}
	if check.calls != 0 {
		t.Fatal("checks must not run without service names")
	}
}

func TestGate_CancelledContextIsClosed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	check := &gateFakeCheck{name: "fake", running: map[string]bool{"KzoneClient": true}}
	if NewGate(&gateTestLogger{}, check).IsSwitchingPermitted(ctx, []string{"KzoneClient"}) {
		t.Fatal("expected closed gate on cancelled context")
	}
}

func TestCommandCheck_AnyRunning(t *testing.T) {
	mock := &GateMockCommander{Out: []byte("\"KzoneClient.exe\",\"4120\",\"Services\",\"0\",\"12,344 K\"\r\n")}
	c := NewCommandCheck(mock, ParseTasklistCSV, "tasklist", "/FO", "CSV", "/NH")

	running, err := c.AnyRunning(context.Background(), []string{"kzoneclient"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !running {
		t.Fatal("expected KzoneClient to be found")
	}
	if mock.GotName != "tasklist" || !reflect.DeepEqual(mock.GotArgs, []string{"/FO", "CSV", "/NH"}) {
		t.Fatalf("unexpected invocation %s %v", mock.GotName, mock.GotArgs)
	}
}

func TestCommandCheck_CommandErrorPropagates(t *testing.T) {
	mock := &GateMockCommander{Err: errors.New("exec: \"systemctl\": executable file not found in $PATH")}
	c := NewCommandCheck(mock, ParseSystemdUnits, "systemctl", "list-units")

	if _, err := c.AnyRunning(context.Background(), []string{"ssh"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseTasklistCSV(t *testing.T) {
	out := "\"System Idle Process\",\"0\",\"Services\",\"0\",\"8 K\"\r\n\"KzoneSync.EXE\",\"77\",\"Console\",\"1\",\"1,024 K\"\r\n"
	got, err := ParseTasklistCSV(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"System Idle Process", "KzoneSync.EXE", "KzoneSync"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestParseTasklistCSV_NoTasks(t *testing.T) {
	got, err := ParseTasklistCSV("INFO: No tasks are running which match the specified criteria.\r\n")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected no names, got %v err=%v", got, err)
	}
}

func TestParseSystemdUnits(t *testing.T) {
	out := "cron.service loaded active running Regular background program processing daemon\n" +
		"ssh.service  loaded active running OpenBSD Secure Shell server\n\n"
	got, _ := ParseSystemdUnits(out)
	want := []string{"cron.service", "cron", "ssh.service", "ssh"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestParseLaunchctlList(t *testing.T) {
	out := "PID\tStatus\tLabel\n412\t0\tcom.example.kzone\n-\t0\tcom.example.stopped\n"
	got, _ := ParseLaunchctlList(out)
	want := []string{"com.example.kzone"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestParseProcessNames(t *testing.T) {
	got, _ := ParseProcessNames("systemd\n/usr/sbin/kzoned\n  \n")
	want := []string{"systemd", "/usr/sbin/kzoned", "kzoned"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}
