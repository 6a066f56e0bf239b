// Package display renders decoded fields for humans.
//
// Most tags render as their value followed by a unit from a static table.
// Enumerated tags map to names, and a few tags (GPS coordinates, resolutions)
// read a sibling field from the same directory to complete the picture.
// Rendering never modifies the decoded value.
package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/simonhull/exifmeta/internal/types"
)

// key identifies a tag within a numbering space. IFD0, IFD1 and Exif share
// one space; GPS and Interop have their own.
type key struct {
	space types.IFD
	tag   types.Tag
}

func keyOf(f types.Field) key {
	return key{space: space(f.IFD), tag: f.Tag}
}

func space(d types.IFD) types.IFD {
	switch d {
	case types.IFDGPS, types.IFDInterop:
		return d
	default:
		return types.IFDPrimary
	}
}

// input carries the field being rendered and the set it belongs to.
type input struct {
	field  types.Field
	fields []types.Field
}

// sibling returns the first field with tag in the same directory.
func (c input) sibling(tag types.Tag) (types.Field, bool) {
	for _, f := range c.fields {
		if f.IFD == c.field.IFD && f.Tag == tag {
			return f, true
		}
	}
	return types.Field{}, false
}

// siblingText returns the text of an ASCII sibling, or "".
func (c input) siblingText(tag types.Tag) string {
	f, ok := c.sibling(tag)
	if !ok {
		return ""
	}
	if s, ok := f.Value.(types.ASCII); ok {
		return strings.TrimSpace(s.Text())
	}
	return ""
}

type formatter func(c input) string

// Display renders f. fields is the full decoded set f came from; it is
// consulted for sibling tags and may be nil.
func Display(f types.Field, fields []types.Field) string {
	if f.Value == nil {
		return ""
	}
	if v, ok := f.Value.(types.Invalid); ok {
		return fmt.Sprintf("<error: %s>", v.Error())
	}

	c := input{field: f, fields: fields}
	k := keyOf(f)

	if fn, ok := formatters[k]; ok {
		if s := fn(c); s != "" {
			return s
		}
	}
	if names, ok := enums[k]; ok {
		if n, ok := types.Int(f.Value, 0); ok && f.Value.Len() == 1 {
			if name, ok := names[n]; ok {
				return name
			}
			return fmt.Sprintf("unknown (%d)", n)
		}
	}

	s := Value(f.Value)
	if unit, ok := units[k]; ok && s != "" {
		return s + " " + unit
	}
	return s
}

// Value renders v without any tag-specific knowledge: text for ASCII,
// a comma-separated list for numbers, hex for short undefined blobs.
func Value(v types.Value) string {
	switch v := v.(type) {
	case types.ASCII:
		return v.Text()
	case types.Undefined:
		if len(v) > 16 {
			return fmt.Sprintf("%d bytes", len(v))
		}
		return fmt.Sprintf("% X", []byte(v))
	case types.Rationals:
		return join(len(v), func(i int) string { return rational(v[i].Num, v[i].Den) })
	case types.SRationals:
		return join(len(v), func(i int) string {
			if v[i].Den == 0 {
				return v[i].String()
			}
			return number(v[i].Float())
		})
	case types.Invalid:
		return fmt.Sprintf("<error: %s>", v.Error())
	}

	return join(v.Len(), func(i int) string {
		if n, ok := types.Int(v, i); ok {
			return strconv.FormatInt(n, 10)
		}
		x, _ := types.Float(v, i)
		return number(x)
	})
}

func join(n int, elem func(i int) string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = elem(i)
	}
	return strings.Join(parts, ", ")
}

// number formats x with at most two decimals and no trailing zeros.
func number(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	r := math.Round(x*100) / 100
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func rational(num, den uint32) string {
	if den == 0 {
		return fmt.Sprintf("%d/%d", num, den)
	}
	return number(float64(num) / float64(den))
}

// units maps tags to the suffix appended to their plain rendering.
var units = map[key]string{
	{types.IFDPrimary, types.TagImageWidth}:      "pixels",
	{types.IFDPrimary, types.TagImageLength}:     "pixels",
	{types.IFDPrimary, types.TagPixelXDimension}: "pixels",
	{types.IFDPrimary, types.TagPixelYDimension}: "pixels",
	{types.IFDPrimary, types.TagFocalLength}:     "mm",
	{types.IFDPrimary, types.TagFocalLength35mm}: "mm",
	{types.IFDPrimary, types.TagSubjectDistance}: "m",
	{types.IFDPrimary, types.TagShutterSpeed}:    "EV",
	{types.IFDPrimary, types.TagAperture}:        "EV",
	{types.IFDPrimary, types.TagMaxAperture}:     "EV",
	{types.IFDPrimary, types.TagBrightness}:      "EV",
	{types.IFDPrimary, types.TagExposureBias}:    "EV",
	{types.IFDGPS, types.TagGPSHPositioningErr}:  "m",
}

var formatters = map[key]formatter{
	{types.IFDPrimary, types.TagExposureTime}:     exposureTime,
	{types.IFDPrimary, types.TagFNumber}:          fNumber,
	{types.IFDPrimary, types.TagXResolution}:      resolution(types.TagResolutionUnit),
	{types.IFDPrimary, types.TagYResolution}:      resolution(types.TagResolutionUnit),
	{types.IFDPrimary, types.TagFocalPlaneXRes}:   resolution(types.TagFocalPlaneUnit),
	{types.IFDPrimary, types.TagFocalPlaneYRes}:   resolution(types.TagFocalPlaneUnit),
	{types.IFDPrimary, types.TagExifVersion}:      version,
	{types.IFDPrimary, types.TagFlashpixVersion}:  version,
	{types.IFDPrimary, types.TagFlash}:            flash,
	{types.IFDPrimary, types.TagComponentsConfig}: components,
	{types.IFDPrimary, types.TagUserComment}:      userComment,
	{types.IFDInterop, types.TagInteropVersion}:   version,
	{types.IFDGPS, types.TagGPSVersionID}:         gpsVersion,
	{types.IFDGPS, types.TagGPSLatitude}:          coordinate(types.TagGPSLatitudeRef),
	{types.IFDGPS, types.TagGPSLongitude}:         coordinate(types.TagGPSLongitudeRef),
	{types.IFDGPS, types.TagGPSDestLatitude}:      coordinate(types.TagGPSDestLatitudeRef),
	{types.IFDGPS, types.TagGPSDestLongitude}:     coordinate(types.TagGPSDestLongRef),
	{types.IFDGPS, types.TagGPSAltitude}:          altitude,
	{types.IFDGPS, types.TagGPSTimeStamp}:         timestamp,
	{types.IFDGPS, types.TagGPSSpeed}:             withRefUnit(types.TagGPSSpeedRef, speedUnits),
	{types.IFDGPS, types.TagGPSDestDistance}:      withRefUnit(types.TagGPSDestDistanceRef, distanceUnits),
	{types.IFDGPS, types.TagGPSTrack}:             direction(types.TagGPSTrackRef),
	{types.IFDGPS, types.TagGPSImgDirection}:      direction(types.TagGPSImgDirectionRef),
	{types.IFDGPS, types.TagGPSDestBearing}:       direction(types.TagGPSDestBearingRef),
}

// exposureTime renders 1/250 as "1/250 s" and long exposures as "2.5 s".
func exposureTime(c input) string {
	rs, ok := c.field.Value.(types.Rationals)
	if !ok || len(rs) != 1 || rs[0].Den == 0 {
		return ""
	}
	r := rs[0]
	if r.Num >= r.Den || r.Num == 0 {
		return number(r.Float()) + " s"
	}
	if g := gcd(r.Num, r.Den); g > 1 {
		r = types.Rational{Num: r.Num / g, Den: r.Den / g}
	}
	if r.Num == 1 {
		return fmt.Sprintf("1/%d s", r.Den)
	}
	return fmt.Sprintf("1/%s s", number(1/r.Float()))
}

func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func fNumber(c input) string {
	x, ok := types.Float(c.field.Value, 0)
	if !ok || c.field.Value.Len() != 1 {
		return ""
	}
	return "f/" + number(x)
}

// resolution renders a resolution with the unit named by the sibling
// unitTag. A missing unit means inches.
func resolution(unitTag types.Tag) formatter {
	return func(c input) string {
		x, ok := types.Float(c.field.Value, 0)
		if !ok || c.field.Value.Len() != 1 {
			return ""
		}
		unit := int64(2)
		if u, ok := c.sibling(unitTag); ok {
			if n, ok := types.Int(u.Value, 0); ok {
				unit = n
			}
		}
		switch unit {
		case 2:
			return number(x) + " pixels per inch"
		case 3:
			return number(x) + " pixels per cm"
		default:
			return number(x)
		}
	}
}

// version renders four ASCII digits such as "0230" as "2.30".
func version(c input) string {
	var b []byte
	switch v := c.field.Value.(type) {
	case types.Undefined:
		b = v
	case types.ASCII:
		b = v
	}
	if len(b) != 4 {
		return ""
	}
	for _, d := range b {
		if d < '0' || d > '9' {
			return ""
		}
	}
	major := strings.TrimLeft(string(b[:2]), "0")
	if major == "" {
		major = "0"
	}
	return major + "." + string(b[2:])
}

func flash(c input) string {
	n, ok := types.Int(c.field.Value, 0)
	if !ok {
		return ""
	}
	if s, ok := flashDescriptions[n]; ok {
		return s
	}
	if n&1 == 1 {
		return fmt.Sprintf("Fired (0x%02X)", n)
	}
	return fmt.Sprintf("Did not fire (0x%02X)", n)
}

// components renders the ComponentsConfiguration channel order, e.g. "YCbCr".
func components(c input) string {
	b, ok := c.field.Value.(types.Undefined)
	if !ok {
		return ""
	}
	names := [...]string{"", "Y", "Cb", "Cr", "R", "G", "B"}
	var sb strings.Builder
	for _, ch := range b {
		if int(ch) >= len(names) {
			return ""
		}
		sb.WriteString(names[ch])
	}
	return sb.String()
}

// userComment strips the 8-byte character code prefix from a UserComment.
func userComment(c input) string {
	b, ok := c.field.Value.(types.Undefined)
	if !ok || len(b) < 8 {
		return ""
	}
	code, text := string(b[:8]), b[8:]
	switch {
	case strings.HasPrefix(code, "ASCII"), code == "\x00\x00\x00\x00\x00\x00\x00\x00":
		return strings.TrimRight(types.ASCII(text).Text(), "\x00 ")
	}
	return ""
}
