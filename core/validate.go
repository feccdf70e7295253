package core

import "bytes"

// IsValid reports whether data carries both ESX marker windows. It never
// panics on short or malformed input.
func IsValid(data []byte) bool {
	if len(data) < MinimumImageSize {
		return false
	}

	first := data[AddrValidCheck1 : AddrValidCheck1+ValidCheckWindowSize]
	if !isKorgWindow(first) {
		return false
	}
	if !bytes.Equal(first[ValidCheckMarkerAt:ValidCheckMarkerAt+len(MagicESX)], []byte(MagicESX)) {
		return false
	}

	// The format marker is not repeated at the second checkpoint
	second := data[AddrValidCheck2 : AddrValidCheck2+ValidCheckWindowSize]
	return isKorgWindow(second)
}

func isKorgWindow(w []byte) bool {
	return bytes.HasPrefix(w, []byte(MagicKORG)) && w[ValidCheckTagOffset] == ValidCheckTag
}

// writeMarkers stamps both validation windows into data, which must be at
// least MinimumImageSize long.
func writeMarkers(data []byte) {
	for _, at := range []int{AddrValidCheck1, AddrValidCheck2} {
		copy(data[at:], MagicKORG)
		data[at+ValidCheckTagOffset] = ValidCheckTag
	}
	copy(data[AddrValidCheck1+ValidCheckMarkerAt:], MagicESX)
}

// Blank returns an empty ESX image: both marker windows set and every
// section zero filled, ending at the start of the sample data region.
func Blank() []byte {
	data := make([]byte, AddrSampleData)
	writeMarkers(data)
	return data
}
