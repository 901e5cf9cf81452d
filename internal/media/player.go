package media

import "time"

// minFrameDelay keeps a clip with zero delays from spinning forever.
const minFrameDelay = time.Millisecond

// Player tracks which frame of a looping clip is current.
type Player struct {
	delays  []time.Duration
	index   int
	elapsed time.Duration
}

func NewPlayer(delays []time.Duration) *Player {
	d := make([]time.Duration, len(delays))
	for i, delay := range delays {
		d[i] = max(delay, minFrameDelay)
	}
	return &Player{delays: d}
}

func (p *Player) Index() int {
	return p.index
}

// Advance moves playback forward by dt, wrapping at the end of the clip. It
// reports whether the current frame changed.
func (p *Player) Advance(dt time.Duration) bool {
	if len(p.delays) < 2 || dt <= 0 {
		return false
	}

	start := p.index
	p.elapsed += dt
	for p.elapsed >= p.delays[p.index] {
		p.elapsed -= p.delays[p.index]
		p.index = (p.index + 1) % len(p.delays)
	}
	return p.index != start
}
