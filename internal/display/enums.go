package display

import "github.com/simonhull/exifmeta/internal/types"

// enums maps enumerated tags to the names of their values.
var enums = map[key]map[int64]string{
	{types.IFDPrimary, types.TagOrientation}: {
		1: "normal",
		2: "mirror horizontal",
		3: "rotate 180",
		4: "mirror vertical",
		5: "mirror horizontal and rotate 270 CW",
		6: "rotate 90 CW",
		7: "mirror horizontal and rotate 90 CW",
		8: "rotate 270 CW",
	},
	{types.IFDPrimary, types.TagResolutionUnit}: resolutionUnits,
	{types.IFDPrimary, types.TagFocalPlaneUnit}: resolutionUnits,
	{types.IFDPrimary, types.TagCompression}: {
		1: "uncompressed",
		6: "JPEG",
		7: "JPEG",
		8: "deflate",
	},
	{types.IFDPrimary, types.TagYCbCrPositioning}: {
		1: "centered",
		2: "co-sited",
	},
	{types.IFDPrimary, types.TagExposureProgram}: {
		0: "not defined",
		1: "manual",
		2: "normal program",
		3: "aperture priority",
		4: "shutter priority",
		5: "creative program",
		6: "action program",
		7: "portrait mode",
		8: "landscape mode",
	},
	{types.IFDPrimary, types.TagMeteringMode}: {
		0:   "unknown",
		1:   "average",
		2:   "center-weighted average",
		3:   "spot",
		4:   "multi-spot",
		5:   "pattern",
		6:   "partial",
		255: "other",
	},
	{types.IFDPrimary, types.TagLightSource}: {
		0:   "unknown",
		1:   "daylight",
		2:   "fluorescent",
		3:   "tungsten",
		4:   "flash",
		9:   "fine weather",
		10:  "cloudy weather",
		11:  "shade",
		12:  "daylight fluorescent",
		13:  "day white fluorescent",
		14:  "cool white fluorescent",
		15:  "white fluorescent",
		17:  "standard light A",
		18:  "standard light B",
		19:  "standard light C",
		20:  "D55",
		21:  "D65",
		22:  "D75",
		23:  "D50",
		24:  "ISO studio tungsten",
		255: "other",
	},
	{types.IFDPrimary, types.TagColorSpace}: {
		1:      "sRGB",
		0xFFFF: "uncalibrated",
	},
	{types.IFDPrimary, types.TagExposureMode}: {
		0: "auto exposure",
		1: "manual exposure",
		2: "auto bracket",
	},
	{types.IFDPrimary, types.TagWhiteBalance}: {
		0: "auto white balance",
		1: "manual white balance",
	},
	{types.IFDPrimary, types.TagSceneCaptureType}: {
		0: "standard",
		1: "landscape",
		2: "portrait",
		3: "night scene",
	},
	{types.IFDGPS, types.TagGPSAltitudeRef}: {
		0: "above sea level",
		1: "below sea level",
	},
}

var resolutionUnits = map[int64]string{
	1: "none",
	2: "inch",
	3: "cm",
}

var flashDescriptions = map[int64]string{
	0x00: "No flash",
	0x01: "Fired",
	0x05: "Fired, return not detected",
	0x07: "Fired, return detected",
	0x08: "On, did not fire",
	0x09: "On, fired",
	0x0D: "On, return not detected",
	0x0F: "On, return detected",
	0x10: "Off, did not fire",
	0x14: "Off, did not fire, return not detected",
	0x18: "Auto, did not fire",
	0x19: "Auto, fired",
	0x1D: "Auto, fired, return not detected",
	0x1F: "Auto, fired, return detected",
	0x20: "No flash function",
	0x30: "Off, no flash function",
	0x41: "Fired, red-eye reduction",
	0x45: "Fired, red-eye reduction, return not detected",
	0x47: "Fired, red-eye reduction, return detected",
	0x49: "On, red-eye reduction",
	0x4D: "On, red-eye reduction, return not detected",
	0x4F: "On, red-eye reduction, return detected",
	0x50: "Off, red-eye reduction",
	0x58: "Auto, did not fire, red-eye reduction",
	0x59: "Auto, fired, red-eye reduction",
	0x5D: "Auto, fired, red-eye reduction, return not detected",
	0x5F: "Auto, fired, red-eye reduction, return detected",
}
