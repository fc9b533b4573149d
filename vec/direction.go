package vec

// Unit and zero vectors.
var (
	// X is the unit vector along the x axis (right).
	X = Vec2{X: 1, Y: 0}
	// Y is the unit vector along the y axis (down, screen coordinates).
	Y = Vec2{X: 0, Y: 1}
	// Zero is the zero vector.
	Zero = Vec2{X: 0, Y: 0}
)

// Glyphs returned by Vec2.Glyph.
const (
	GlyphZero  = "o"
	GlyphUp    = "^"
	GlyphRight = ">"
	GlyphDown  = "v"
	GlyphLeft  = "<"
	GlyphOther = "*"
)

// Cardinal returns the four unit directions in the fixed order
// up, right, down, left: {0,-1}, {1,0}, {0,1}, {-1,0}.
// The array is returned by value, so callers may modify it freely.
func Cardinal() [4]Vec2 {
	return [4]Vec2{Y.Neg(), X, Y, X.Neg()}
}

// Glyph maps the zero vector and the four cardinal unit vectors to
// "o", "^", ">", "v", "<". Any other vector maps to "*".
// Text renderers rely on these exact glyphs.
func (v Vec2) Glyph() string {
	switch v {
	case Zero:
		return GlyphZero
	case Vec2{X: 0, Y: -1}:
		return GlyphUp
	case Vec2{X: 1, Y: 0}:
		return GlyphRight
	case Vec2{X: 0, Y: 1}:
		return GlyphDown
	case Vec2{X: -1, Y: 0}:
		return GlyphLeft
	default:
		return GlyphOther
	}
}
