// Package colorspace converts between sRGB and CIE Lab (through CIE XYZ, D65)
// and measures perceptual distance between Lab colors.
//
// The constants follow the common easyrgb formulation so that results match
// the values the game has always produced, rather than the higher precision
// matrices used by general-purpose color libraries.
package colorspace

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB color. Channels are expected in [0, 255].
type RGB struct {
	R, G, B int
}

// XYZ is a CIE XYZ tristimulus value scaled so that Y of white is 100.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* color.
type Lab struct {
	L, A, B float64
}

// D65 reference white.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16.0 / 116.0
)

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Colorful returns the color as a go-colorful value.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(clampChannel(c.R)) / 255,
		G: float64(clampChannel(c.G)) / 255,
		B: float64(clampChannel(c.B)) / 255,
	}
}

// ParseHex parses "#rrggbb" or "#rgb" (case insensitive, "#" optional).
func ParseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("colorspace: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// RGBToXYZ gamma-expands the channels and applies the sRGB to XYZ matrix.
func RGBToXYZ(c RGB) XYZ {
	r := expandGamma(float64(c.R)/255) * 100
	g := expandGamma(float64(c.G)/255) * 100
	b := expandGamma(float64(c.B)/255) * 100

	return XYZ{
		X: r*0.4124 + g*0.3576 + b*0.1805,
		Y: r*0.2126 + g*0.7152 + b*0.0722,
		Z: r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// XYZToLab normalizes by the D65 white point and applies the Lab transfer function.
func XYZToLab(c XYZ) Lab {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// LabToXYZ is the inverse of XYZToLab.
func LabToXYZ(c Lab) XYZ {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	return XYZ{
		X: labFInv(fx) * whiteX,
		Y: labFInv(fy) * whiteY,
		Z: labFInv(fz) * whiteZ,
	}
}

// XYZToRGB is the inverse of RGBToXYZ. Channels outside the sRGB gamut are
// rounded and clamped to [0, 255].
func XYZToRGB(c XYZ) RGB {
	x := c.X / 100
	y := c.Y / 100
	z := c.Z / 100

	r := x*3.2406 + y*-1.5372 + z*-0.4986
	g := x*-0.9689 + y*1.8758 + z*0.0415
	b := x*0.0557 + y*-0.2040 + z*1.0570

	return RGB{
		R: toChannel(compressGamma(r)),
		G: toChannel(compressGamma(g)),
		B: toChannel(compressGamma(b)),
	}
}

// RGBToLab converts sRGB to Lab through XYZ.
func RGBToLab(c RGB) Lab {
	return XYZToLab(RGBToXYZ(c))
}

// LabToRGB converts Lab to sRGB through XYZ, clamping out-of-gamut colors.
func LabToRGB(c Lab) RGB {
	return XYZToRGB(LabToXYZ(c))
}

// LabToHex converts a Lab color to its displayed "#rrggbb" string.
func LabToHex(c Lab) string {
	return LabToRGB(c).Hex()
}

// DeltaE returns the CIE76 distance between two Lab colors.
func DeltaE(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

func expandGamma(v float64) float64 {
	if v > 0.04045 {
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return v / 12.92
}

func compressGamma(v float64) float64 {
	if v > 0.0031308 {
		return 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return 12.92 * v
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + labOffset
}

func labFInv(f float64) float64 {
	if cube := f * f * f; cube > labEpsilon {
		return cube
	}
	return (f - labOffset) / labKappa
}

func toChannel(v float64) int {
	return clampChannel(int(math.Round(v * 255)))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
