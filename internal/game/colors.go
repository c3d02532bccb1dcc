package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// materialPalette is indexed by RingParticle.MaterialIdx (mod 20, §3) to give
// ring particles visual variety without storing a colour per particle.
var materialPalette = [20]RGB{
	{R: 168, G: 162, B: 150}, {R: 190, G: 180, B: 160}, {R: 140, G: 136, B: 130},
	{R: 210, G: 200, B: 185}, {R: 120, G: 114, B: 108}, {R: 225, G: 215, B: 195},
	{R: 100, G: 98, B: 94}, {R: 200, G: 188, B: 170}, {R: 160, G: 152, B: 140},
	{R: 235, G: 225, B: 205}, {R: 90, G: 86, B: 82}, {R: 180, G: 170, B: 155},
	{R: 150, G: 144, B: 134}, {R: 215, G: 205, B: 188}, {R: 110, G: 106, B: 100},
	{R: 195, G: 185, B: 168}, {R: 130, G: 124, B: 116}, {R: 220, G: 210, B: 192},
	{R: 170, G: 162, B: 148}, {R: 240, G: 232, B: 216},
}

func MaterialColor(idx int) RGB {
	return materialPalette[idx%len(materialPalette)]
}

// Explosion billboard colours, used to tint the animation frames over a
// record's lifetime (bright core fading to smoke).
var ExplosionPalette = struct {
	Core RGB
	Hot  RGB
	Mid  RGB
	Cool RGB
	Smoke RGB
}{
	Core:  RGB{R: 255, G: 245, B: 210},
	Hot:   RGB{R: 255, G: 200, B: 90},
	Mid:   RGB{R: 255, G: 140, B: 60},
	Cool:  RGB{R: 190, G: 70, B: 45},
	Smoke: RGB{R: 110, G: 108, B: 112},
}
