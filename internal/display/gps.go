package display

import (
	"fmt"
	"math"

	"github.com/simonhull/exifmeta/internal/types"
)

var (
	speedUnits    = map[string]string{"K": "km/h", "M": "mph", "N": "knots"}
	distanceUnits = map[string]string{"K": "km", "M": "mi", "N": "nautical miles"}
)

// coordinate renders degrees, minutes and seconds with the hemisphere
// taken from the sibling reference tag: 48°51'29.6" N.
func coordinate(refTag types.Tag) formatter {
	return func(c input) string {
		rs, ok := c.field.Value.(types.Rationals)
		if !ok || len(rs) != 3 {
			return ""
		}
		s := fmt.Sprintf("%s°%s'%s\"", rational(rs[0].Num, rs[0].Den),
			rational(rs[1].Num, rs[1].Den), rational(rs[2].Num, rs[2].Den))
		if ref := c.siblingText(refTag); ref != "" {
			s += " " + ref
		}
		return s
	}
}

func altitude(c input) string {
	x, ok := types.Float(c.field.Value, 0)
	if !ok || c.field.Value.Len() != 1 {
		return ""
	}
	s := number(x) + " m"
	if ref, ok := c.sibling(types.TagGPSAltitudeRef); ok {
		if n, ok := types.Int(ref.Value, 0); ok && n == 1 {
			s += " below sea level"
		}
	}
	return s
}

// timestamp renders the hour, minute, second triple as a UTC time of day.
func timestamp(c input) string {
	rs, ok := c.field.Value.(types.Rationals)
	if !ok || len(rs) != 3 {
		return ""
	}
	for _, r := range rs {
		if r.Den == 0 {
			return ""
		}
	}
	sec := math.Round(rs[2].Float()*100) / 100
	s := number(sec)
	if sec < 10 {
		s = "0" + s
	}
	return fmt.Sprintf("%02d:%02d:%s UTC", int(math.Floor(rs[0].Float())), int(math.Floor(rs[1].Float())), s)
}

// withRefUnit renders a number with the unit named by a sibling reference
// tag, falling back to no unit when the reference is missing or unknown.
func withRefUnit(refTag types.Tag, unitsByRef map[string]string) formatter {
	return func(c input) string {
		x, ok := types.Float(c.field.Value, 0)
		if !ok || c.field.Value.Len() != 1 {
			return ""
		}
		if unit, ok := unitsByRef[c.siblingText(refTag)]; ok {
			return number(x) + " " + unit
		}
		return number(x)
	}
}

// direction renders a bearing in degrees, qualified as true or magnetic
// north by the sibling reference tag.
func direction(refTag types.Tag) formatter {
	return func(c input) string {
		x, ok := types.Float(c.field.Value, 0)
		if !ok || c.field.Value.Len() != 1 {
			return ""
		}
		s := number(x) + "°"
		switch c.siblingText(refTag) {
		case "T":
			s += " true"
		case "M":
			s += " magnetic"
		}
		return s
	}
}

// gpsVersion renders GPSVersionID bytes 2 3 0 0 as "2.3.0.0".
func gpsVersion(c input) string {
	b, ok := c.field.Value.(types.Bytes)
	if !ok || len(b) != 4 {
		return ""
	}
	return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
}
