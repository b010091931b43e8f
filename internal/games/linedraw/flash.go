package linedraw

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash is a highlight that decays from 1 to 0.
type flash struct {
	tween *gween.Tween
	level float32
}

func (f *flash) start(secs float64) {
	if secs <= 0 {
		f.stop()
		return
	}
	f.tween = gween.New(1, 0, float32(secs), ease.OutQuad)
	f.level = 1
}

func (f *flash) update(dt float32) {
	if f.tween == nil {
		return
	}
	cur, finished := f.tween.Update(dt)
	f.level = cur
	if finished {
		f.stop()
	}
}

func (f *flash) stop() {
	f.tween = nil
	f.level = 0
}

func (f *flash) active() bool { return f.tween != nil }
