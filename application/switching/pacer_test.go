package switching

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestPacer_RunVisitsEveryValueInOrder(t *testing.T) {
	var got []int
	p := NewPacer(0, 5, 0)
	if err := p.Run(context.Background(), func(v int) { got = append(got, v) }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestPacer_EndBeforeStartClamps(t *testing.T) {
	var got []int
	p := NewPacer(3, 1, 0)
	if err := p.Run(context.Background(), func(v int) { got = append(got, v) }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("got %v, want [3]", got)
	}
}

func TestPacer_WaitsBetweenSteps(t *testing.T) {
	p := NewPacer(0, 3, 5*time.Millisecond)
	start := time.Now()
	if err := p.Run(context.Background(), func(int) {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("expected at least 3 delays, took %v", elapsed)
	}
}

func TestPacer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPacer(0, 1000, time.Millisecond)
	steps := 0
	err := p.Run(ctx, func(v int) {
		steps++
		if v == 2 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if steps != 3 {
		t.Fatalf("expected 3 steps before cancel, got %d", steps)
	}
}
