package types

import "fmt"

// Tag is the 16-bit tag identifier of an IFD entry. Its meaning depends on
// the directory it appears in: GPS tags reuse small numbers that also
// exist in IFD0.
type Tag uint16

// Tags referenced by the decoder and the formatter.
const (
	TagImageWidth       Tag = 0x0100
	TagImageLength      Tag = 0x0101
	TagCompression      Tag = 0x0103
	TagMake             Tag = 0x010F
	TagModel            Tag = 0x0110
	TagOrientation      Tag = 0x0112
	TagXResolution      Tag = 0x011A
	TagYResolution      Tag = 0x011B
	TagResolutionUnit   Tag = 0x0128
	TagDateTime         Tag = 0x0132
	TagYCbCrPositioning Tag = 0x0213
	TagCopyright        Tag = 0x8298
	TagExposureTime     Tag = 0x829A
	TagFNumber          Tag = 0x829D
	TagExifPointer      Tag = 0x8769
	TagExposureProgram  Tag = 0x8822
	TagGPSPointer       Tag = 0x8825
	TagISOSpeed         Tag = 0x8827
	TagExifVersion      Tag = 0x9000
	TagDateTimeOriginal Tag = 0x9003
	TagComponentsConfig Tag = 0x9101
	TagShutterSpeed     Tag = 0x9201
	TagAperture         Tag = 0x9202
	TagBrightness       Tag = 0x9203
	TagExposureBias     Tag = 0x9204
	TagMaxAperture      Tag = 0x9205
	TagSubjectDistance  Tag = 0x9206
	TagMeteringMode     Tag = 0x9207
	TagLightSource      Tag = 0x9208
	TagFlash            Tag = 0x9209
	TagFocalLength      Tag = 0x920A
	TagUserComment      Tag = 0x9286
	TagFlashpixVersion  Tag = 0xA000
	TagColorSpace       Tag = 0xA001
	TagPixelXDimension  Tag = 0xA002
	TagPixelYDimension  Tag = 0xA003
	TagInteropPointer   Tag = 0xA005
	TagFocalPlaneXRes   Tag = 0xA20E
	TagFocalPlaneYRes   Tag = 0xA20F
	TagFocalPlaneUnit   Tag = 0xA210
	TagExposureMode     Tag = 0xA402
	TagWhiteBalance     Tag = 0xA403
	TagFocalLength35mm  Tag = 0xA405
	TagSceneCaptureType Tag = 0xA406
	TagLensModel        Tag = 0xA434

	TagInteropIndex   Tag = 0x0001
	TagInteropVersion Tag = 0x0002

	TagGPSVersionID       Tag = 0x0000
	TagGPSLatitudeRef     Tag = 0x0001
	TagGPSLatitude        Tag = 0x0002
	TagGPSLongitudeRef    Tag = 0x0003
	TagGPSLongitude       Tag = 0x0004
	TagGPSAltitudeRef     Tag = 0x0005
	TagGPSAltitude        Tag = 0x0006
	TagGPSTimeStamp       Tag = 0x0007
	TagGPSSpeedRef        Tag = 0x000C
	TagGPSSpeed           Tag = 0x000D
	TagGPSTrackRef        Tag = 0x000E
	TagGPSTrack           Tag = 0x000F
	TagGPSImgDirectionRef Tag = 0x0010
	TagGPSImgDirection    Tag = 0x0011
	TagGPSDestLatitudeRef Tag = 0x0013
	TagGPSDestLatitude    Tag = 0x0014
	TagGPSDestLongRef     Tag = 0x0015
	TagGPSDestLongitude   Tag = 0x0016
	TagGPSDestBearingRef  Tag = 0x0017
	TagGPSDestBearing     Tag = 0x0018
	TagGPSDestDistanceRef Tag = 0x0019
	TagGPSDestDistance    Tag = 0x001A
	TagGPSDateStamp       Tag = 0x001D
	TagGPSHPositioningErr Tag = 0x001F
)

// Name returns the tag's name within directory d, or "Tag(0xNNNN)" when
// the tag is not known.
func (t Tag) Name(d IFD) string {
	var table map[Tag]string
	switch d {
	case IFDGPS:
		table = gpsTagNames
	case IFDInterop:
		table = interopTagNames
	default:
		table = tiffTagNames
	}
	if name, ok := table[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(0x%04X)", uint16(t))
}

// tiffTagNames covers IFD0, IFD1 and the Exif sub-IFD, which share a
// numbering space.
var tiffTagNames = map[Tag]string{
	0x00FE: "NewSubfileType",
	0x0100: "ImageWidth",
	0x0101: "ImageLength",
	0x0102: "BitsPerSample",
	0x0103: "Compression",
	0x0106: "PhotometricInterpretation",
	0x010E: "ImageDescription",
	0x010F: "Make",
	0x0110: "Model",
	0x0111: "StripOffsets",
	0x0112: "Orientation",
	0x0115: "SamplesPerPixel",
	0x0116: "RowsPerStrip",
	0x0117: "StripByteCounts",
	0x011A: "XResolution",
	0x011B: "YResolution",
	0x011C: "PlanarConfiguration",
	0x0128: "ResolutionUnit",
	0x012D: "TransferFunction",
	0x0131: "Software",
	0x0132: "DateTime",
	0x013B: "Artist",
	0x013E: "WhitePoint",
	0x013F: "PrimaryChromaticities",
	0x0201: "JPEGInterchangeFormat",
	0x0202: "JPEGInterchangeFormatLength",
	0x0211: "YCbCrCoefficients",
	0x0212: "YCbCrSubSampling",
	0x0213: "YCbCrPositioning",
	0x0214: "ReferenceBlackWhite",
	0x8298: "Copyright",
	0x829A: "ExposureTime",
	0x829D: "FNumber",
	0x8769: "ExifIFDPointer",
	0x8822: "ExposureProgram",
	0x8824: "SpectralSensitivity",
	0x8825: "GPSInfoIFDPointer",
	0x8827: "PhotographicSensitivity",
	0x8828: "OECF",
	0x8830: "SensitivityType",
	0x8832: "RecommendedExposureIndex",
	0x9000: "ExifVersion",
	0x9003: "DateTimeOriginal",
	0x9004: "DateTimeDigitized",
	0x9010: "OffsetTime",
	0x9011: "OffsetTimeOriginal",
	0x9012: "OffsetTimeDigitized",
	0x9101: "ComponentsConfiguration",
	0x9102: "CompressedBitsPerPixel",
	0x9201: "ShutterSpeedValue",
	0x9202: "ApertureValue",
	0x9203: "BrightnessValue",
	0x9204: "ExposureBiasValue",
	0x9205: "MaxApertureValue",
	0x9206: "SubjectDistance",
	0x9207: "MeteringMode",
	0x9208: "LightSource",
	0x9209: "Flash",
	0x920A: "FocalLength",
	0x9214: "SubjectArea",
	0x927C: "MakerNote",
	0x9286: "UserComment",
	0x9290: "SubSecTime",
	0x9291: "SubSecTimeOriginal",
	0x9292: "SubSecTimeDigitized",
	0xA000: "FlashpixVersion",
	0xA001: "ColorSpace",
	0xA002: "PixelXDimension",
	0xA003: "PixelYDimension",
	0xA004: "RelatedSoundFile",
	0xA005: "InteropIFDPointer",
	0xA20B: "FlashEnergy",
	0xA20E: "FocalPlaneXResolution",
	0xA20F: "FocalPlaneYResolution",
	0xA210: "FocalPlaneResolutionUnit",
	0xA214: "SubjectLocation",
	0xA215: "ExposureIndex",
	0xA217: "SensingMethod",
	0xA300: "FileSource",
	0xA301: "SceneType",
	0xA302: "CFAPattern",
	0xA401: "CustomRendered",
	0xA402: "ExposureMode",
	0xA403: "WhiteBalance",
	0xA404: "DigitalZoomRatio",
	0xA405: "FocalLengthIn35mmFilm",
	0xA406: "SceneCaptureType",
	0xA407: "GainControl",
	0xA408: "Contrast",
	0xA409: "Saturation",
	0xA40A: "Sharpness",
	0xA40B: "DeviceSettingDescription",
	0xA40C: "SubjectDistanceRange",
	0xA420: "ImageUniqueID",
	0xA430: "CameraOwnerName",
	0xA431: "BodySerialNumber",
	0xA432: "LensSpecification",
	0xA433: "LensMake",
	0xA434: "LensModel",
	0xA435: "LensSerialNumber",
	0xA500: "Gamma",
}

var gpsTagNames = map[Tag]string{
	0x00: "GPSVersionID",
	0x01: "GPSLatitudeRef",
	0x02: "GPSLatitude",
	0x03: "GPSLongitudeRef",
	0x04: "GPSLongitude",
	0x05: "GPSAltitudeRef",
	0x06: "GPSAltitude",
	0x07: "GPSTimeStamp",
	0x08: "GPSSatellites",
	0x09: "GPSStatus",
	0x0A: "GPSMeasureMode",
	0x0B: "GPSDOP",
	0x0C: "GPSSpeedRef",
	0x0D: "GPSSpeed",
	0x0E: "GPSTrackRef",
	0x0F: "GPSTrack",
	0x10: "GPSImgDirectionRef",
	0x11: "GPSImgDirection",
	0x12: "GPSMapDatum",
	0x13: "GPSDestLatitudeRef",
	0x14: "GPSDestLatitude",
	0x15: "GPSDestLongitudeRef",
	0x16: "GPSDestLongitude",
	0x17: "GPSDestBearingRef",
	0x18: "GPSDestBearing",
	0x19: "GPSDestDistanceRef",
	0x1A: "GPSDestDistance",
	0x1B: "GPSProcessingMethod",
	0x1C: "GPSAreaInformation",
	0x1D: "GPSDateStamp",
	0x1E: "GPSDifferential",
	0x1F: "GPSHPositioningError",
}

var interopTagNames = map[Tag]string{
	0x0001: "InteroperabilityIndex",
	0x0002: "InteroperabilityVersion",
	0x1000: "RelatedImageFileFormat",
	0x1001: "RelatedImageWidth",
	0x1002: "RelatedImageLength",
}
