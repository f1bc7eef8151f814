package switching

import (
	"context"
	"time"
)

// Pacer drives the fixed presentation-only progress sequence shown after a
// successful switch. It is unrelated to how long the switch actually took.
type Pacer struct {
	Start int
	End   int
	Delay time.Duration
}

func NewPacer(start, end int, delay time.Duration) Pacer {
	if end < start {
		end = start
	}
	return Pacer{Start: start, End: end, Delay: delay}
}

// Run calls step with every value from Start to End inclusive, in order,
// sleeping Delay between consecutive values.
func (p Pacer) Run(ctx context.Context, step func(value int)) error {
	var timer *time.Timer
	if p.Delay > 0 {
		timer = time.NewTimer(p.Delay)
		defer timer.Stop()
	}
	for value := p.Start; value <= p.End; value++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		step(value)
		if value == p.End || timer == nil {
			continue
		}
		timer.Reset(p.Delay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
