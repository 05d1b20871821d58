package core

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
	ColorGrey  = Color{0.6, 0.6, 0.6, 1}
)

// Lerp blends c towards other by t in [0,1].
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// RGB8 quantizes the colour channels to bytes.
func (c Color) RGB8() [3]byte {
	return [3]byte{toByte(c.R), toByte(c.G), toByte(c.B)}
}

func toByte(v float32) byte {
	v = min(max(v, 0), 1)
	return byte(v*255 + 0.5)
}
