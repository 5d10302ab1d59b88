package render

import "image/color"

// fillDyeRGBA converts three dye channel planes (values in [0, 1]) into RGBA
// pixels in buf. Cells flagged solid are painted with the barrier color
// instead of their dye, so walls stay visible whatever flows around them.
func fillDyeRGBA(buf []byte, r, g, b []float64, solid []bool, barrier color.RGBA) {
	for i := range r {
		base := i * 4
		if solid != nil && solid[i] {
			buf[base+0] = barrier.R
			buf[base+1] = barrier.G
			buf[base+2] = barrier.B
			buf[base+3] = barrier.A
			continue
		}
		buf[base+0] = channelByte(r[i])
		buf[base+1] = channelByte(g[i])
		buf[base+2] = channelByte(b[i])
		buf[base+3] = 0xff
	}
}

func channelByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return byte(v * 255)
}
