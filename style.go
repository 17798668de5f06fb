package easel

// Style is the visual style of a shape. Pointer fields are optional: nil
// means "not set", which is distinct from a transparent color.
type Style struct {
	Fill          *Color
	Stroke        *Color
	StrokeWidth   float64  // 0 means 1
	Opacity       *float64 // nil means 1
	ShadowColor   *Color
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64
}

// Merge returns s with every field set in patch overriding the field in s.
// Numeric fields count as set when non-zero.
func (s Style) Merge(patch Style) Style {
	if patch.Fill != nil {
		s.Fill = patch.Fill
	}
	if patch.Stroke != nil {
		s.Stroke = patch.Stroke
	}
	if patch.StrokeWidth != 0 {
		s.StrokeWidth = patch.StrokeWidth
	}
	if patch.Opacity != nil {
		s.Opacity = patch.Opacity
	}
	if patch.ShadowColor != nil {
		s.ShadowColor = patch.ShadowColor
	}
	if patch.ShadowBlur != 0 {
		s.ShadowBlur = patch.ShadowBlur
	}
	if patch.ShadowOffsetX != 0 {
		s.ShadowOffsetX = patch.ShadowOffsetX
	}
	if patch.ShadowOffsetY != 0 {
		s.ShadowOffsetY = patch.ShadowOffsetY
	}
	return s
}

// opacity returns the effective opacity.
func (s Style) opacity() float64 {
	if s.Opacity == nil {
		return 1
	}
	return *s.Opacity
}

// lineWidth returns the effective stroke width.
func (s Style) lineWidth() float64 {
	if s.StrokeWidth == 0 {
		return 1
	}
	return s.StrokeWidth
}

// apply sets the style on ctx. Opacity multiplies the inherited global alpha
// so shapes inside a translucent layer stay translucent. Shadow, stroke and
// fill parameters are only touched when their color is set.
func (s Style) apply(ctx Context) {
	ctx.SetGlobalAlpha(ctx.GlobalAlpha() * s.opacity())

	if s.ShadowColor != nil {
		ctx.SetShadow(*s.ShadowColor, s.ShadowBlur, s.ShadowOffsetX, s.ShadowOffsetY)
	}
	if s.Stroke != nil {
		ctx.SetStrokeColor(*s.Stroke)
		ctx.SetLineWidth(s.lineWidth())
	}
	if s.Fill != nil {
		ctx.SetFillColor(*s.Fill)
	}
}
