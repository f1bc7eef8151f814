package switching

// Update is one status transition published to the presentation layer.
type Update struct {
	Phase  Phase
	Status string
	// Progress runs from ProgressStart to ProgressEnd while a successful switch
	// is paced; it carries no meaning beyond display.
	Progress      int
	ProgressStart int
	ProgressEnd   int
	Err           error
	State         State
}

// Fraction is the progress position in [0, 1].
func (u Update) Fraction() float64 {
	span := u.ProgressEnd - u.ProgressStart
	if span <= 0 {
		return 0
	}
	f := float64(u.Progress-u.ProgressStart) / float64(span)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
