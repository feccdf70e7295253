package core

// Section is a fixed [Start, End) byte range of the image.
type Section struct {
	Name  string
	Start int
	End   int
}

func (s Section) Len() int { return s.End - s.Start }

var (
	SectionGlobalParameters = Section{"global parameters", AddrGlobalParameters, AddrUnknownSection1}
	SectionPatterns         = Section{"patterns", AddrPatternData, AddrUnknownSection2}
	SectionSongs            = Section{"songs", AddrSongData, AddrSongEventData}
	SectionMonoHeaders      = Section{"mono sample headers", AddrSampleHeaderMono, AddrSampleHeaderStereo}
	SectionStereoHeaders    = Section{"stereo sample headers", AddrSampleHeaderStereo, AddrSampleHeaderStereo + NumSamplesStereo*SampleHeaderSizeStereo}
)

// Sections lists the fixed sections in address order. The sample data
// region is open ended and not included.
var Sections = []Section{
	SectionGlobalParameters,
	SectionPatterns,
	SectionSongs,
	SectionMonoHeaders,
	SectionStereoHeaders,
}
