package viewer

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

var Palette = struct {
	DeepWater RGB
	Water     RGB
	Sand      RGB
	Dirt      RGB
	Grass     RGB
	Meadow    RGB
	Rock      RGB
	Snow      RGB
	Bush      RGB
	Stone     RGB
	FlowerA   RGB
	FlowerB   RGB
	Void      RGB
	Marker    RGB
	Text      RGB
	TextDim   RGB
}{
	DeepWater: RGB{R: 24, G: 48, B: 86},
	Water:     RGB{R: 38, G: 84, B: 132},
	Sand:      RGB{R: 214, G: 190, B: 153},
	Dirt:      RGB{R: 142, G: 110, B: 78},
	Grass:     RGB{R: 96, G: 138, B: 70},
	Meadow:    RGB{R: 122, G: 158, B: 82},
	Rock:      RGB{R: 121, G: 119, B: 116},
	Snow:      RGB{R: 228, G: 232, B: 238},
	Bush:      RGB{R: 52, G: 94, B: 48},
	Stone:     RGB{R: 96, G: 96, B: 100},
	FlowerA:   RGB{R: 222, G: 112, B: 140},
	FlowerB:   RGB{R: 236, G: 206, B: 96},
	Void:      RGB{R: 10, G: 10, B: 14},
	Marker:    RGB{R: 255, G: 214, B: 80},
	Text:      RGB{R: 235, G: 235, B: 235},
	TextDim:   RGB{R: 150, G: 150, B: 155},
}
