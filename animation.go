package easel

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to four values of a shape or layer at once. Create
// one with a Tween constructor and call Update from the animation callback:
//
//	tw := easel.TweenPosition(rect, 300, 200, time.Second, ease.OutCubic)
//	r.StartAnimation(func(dt time.Duration) { tw.Update(dt) })
//
// Each Update writes the current values through the target's setters.
// There is no global tween manager; callers own their groups.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	values [4]float64
	apply  func(v [4]float64)
	Done   bool
}

func newTweenGroup(from, to []float64, d time.Duration, fn ease.TweenFunc, apply func([4]float64)) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{count: len(from), apply: apply}
	secs := float32(d.Seconds())
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), secs, fn)
		g.values[i] = from[i]
	}
	return g
}

// Update advances every tween by dt and applies the new values. Once all
// tweens finish, Done is set and later calls do nothing.
func (g *TweenGroup) Update(dt time.Duration) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(float32(dt.Seconds()))
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(g.values)
}

// Reset rewinds the group to its starting values.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
	}
	g.Done = false
}

// TweenPosition animates a shape's position to (toX, toY).
func TweenPosition(s Shape, toX, toY float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	p := s.Position()
	return newTweenGroup([]float64{p.X, p.Y}, []float64{toX, toY}, d, fn, func(v [4]float64) {
		s.SetPosition(v[0], v[1])
	})
}

// TweenRotation animates a shape's rotation to the given angle in radians.
func TweenRotation(s Shape, to float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup([]float64{s.Pose().Rotation}, []float64{to}, d, fn, func(v [4]float64) {
		s.SetRotation(v[0])
	})
}

// TweenScale animates a shape's scale to (toSX, toSY).
func TweenScale(s Shape, toSX, toSY float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	p := s.Pose()
	return newTweenGroup([]float64{p.ScaleX, p.ScaleY}, []float64{toSX, toSY}, d, fn, func(v [4]float64) {
		s.SetScale(v[0], v[1])
	})
}

// TweenFill animates a shape's fill color to the given color. A shape with
// no fill starts from transparent.
func TweenFill(s Shape, to Color, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	from := ColorTransparent
	if f := s.Style().Fill; f != nil {
		from = *f
	}
	return newTweenGroup(
		[]float64{from.R, from.G, from.B, from.A},
		[]float64{to.R, to.G, to.B, to.A},
		d, fn, func(v [4]float64) {
			s.SetStyle(Style{Fill: &Color{v[0], v[1], v[2], v[3]}})
		})
}

// TweenLayerOpacity animates a layer's opacity. Every step emits
// EventOpacityChange.
func TweenLayerOpacity(l *Layer, to float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup([]float64{l.Opacity()}, []float64{to}, d, fn, func(v [4]float64) {
		l.SetOpacity(v[0])
	})
}

// TweenLayerPosition animates a layer's offset. Every step emits
// EventPositionChange.
func TweenLayerPosition(l *Layer, toX, toY float64, d time.Duration, fn ease.TweenFunc) *TweenGroup {
	p := l.Position()
	return newTweenGroup([]float64{p.X, p.Y}, []float64{toX, toY}, d, fn, func(v [4]float64) {
		l.SetPosition(v[0], v[1])
	})
}
