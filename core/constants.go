package core

import "github.com/vxdy/open-electribe-editor/internal/record"

// Absolute addresses of the ESX image sections.
const (
	AddrValidCheck1        = 0x000000
	AddrGlobalParameters   = 0x000020
	AddrUnknownSection1    = 0x000200
	AddrPatternData        = 0x010000
	AddrUnknownSection2    = 0x210000
	AddrSongData           = 0x220000
	AddrSongEventData      = 0x228400
	AddrSampleHeaderMono   = 0x240000
	AddrSampleHeaderStereo = AddrSampleHeaderMono + NumSamplesMono*SampleHeaderSizeMono // 0x242800
	AddrValidCheck2        = 0x24FFF0
	AddrSampleData         = 0x250000
)

const (
	NumPatterns       = 256
	NumSongs          = 64
	NumSamplesMono    = 256
	NumSamplesStereo  = 128
	NumSamples        = NumSamplesMono + NumSamplesStereo
	SizePatternRecord = (AddrUnknownSection2 - AddrPatternData) / NumPatterns // 0x2000
	SizeSongRecord    = (AddrSongEventData - AddrSongData) / NumSongs         // 0x210

	SampleHeaderSizeMono   = record.MonoHeaderSizeBytes
	SampleHeaderSizeStereo = record.StereoHeaderSizeBytes
)

// Validation windows. Each is 12 bytes starting with "KORG" and carrying
// the tag at byte 7; the first also carries "ESX" at bytes 8-10.
const (
	ValidCheckWindowSize = 12
	ValidCheckTagOffset  = 7
	ValidCheckTag        = 0x71
	ValidCheckMarkerAt   = 8
	MagicKORG            = "KORG"
	MagicESX             = "ESX"

	// MinimumImageSize is the smallest input that can pass validation.
	MinimumImageSize = AddrValidCheck2 + ValidCheckWindowSize
)
