// Package wav reads and writes the RIFF/WAVE PCM files used to move samples
// in and out of an ESX image.
//
// Sample bytes are passed through untouched in both directions.
package wav

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal/errors"
)

// Format describes the PCM stream of a WAV file.
type Format struct {
	AudioFormat   uint16
	Channels      int
	SampleRate    uint32
	BitsPerSample int
}

// Decode parses a RIFF/WAVE file and returns its PCM data. Chunks other than
// "fmt " and "data" are skipped.
func Decode(wavBytes []byte) (core.Payload, error) {
	if len(wavBytes) < RiffHeaderSize {
		return core.Payload{}, &InvalidHeaderError{
			Details: fmt.Sprintf("file too short for a RIFF header (%d bytes)", len(wavBytes)),
		}
	}
	if string(wavBytes[0:4]) != "RIFF" || string(wavBytes[8:12]) != "WAVE" {
		return core.Payload{}, &InvalidHeaderError{Details: "missing RIFF/WAVE signature"}
	}

	var (
		format    *Format
		audioData []byte
	)

	offset := RiffHeaderSize
	for offset+ChunkHeaderSize <= len(wavBytes) {
		chunkID := string(wavBytes[offset : offset+ChunkIDSize])
		chunkSize := int(binary.LittleEndian.Uint32(wavBytes[offset+ChunkIDSize : offset+ChunkHeaderSize]))
		bodyStart := offset + ChunkHeaderSize
		bodyEnd := bodyStart + chunkSize

		if chunkSize < 0 || bodyEnd > len(wavBytes) || bodyEnd < bodyStart {
			return core.Payload{}, &InvalidHeaderError{
				Details: fmt.Sprintf("%q chunk runs past the end of the file", chunkID),
			}
		}

		switch chunkID {
		case "fmt ":
			f, err := parseFormat(wavBytes[bodyStart:bodyEnd])
			if err != nil {
				return core.Payload{}, err
			}
			format = f

		case "data":
			audioData = wavBytes[bodyStart:bodyEnd]
		}
		if format != nil && audioData != nil {
			break
		}

		offset = bodyEnd
		// Chunks are word aligned
		if chunkSize%2 != 0 {
			offset++
		}
	}

	if format == nil {
		return core.Payload{}, &InvalidHeaderError{Details: "no 'fmt ' chunk found"}
	}
	if audioData == nil {
		return core.Payload{}, &InvalidHeaderError{Details: "no 'data' chunk found"}
	}
	if format.AudioFormat != FormatPCM && format.AudioFormat != FormatExtensible {
		return core.Payload{}, errors.UnsupportedFormat.WithFormat("WAV audio format %d is not PCM", format.AudioFormat)
	}

	return core.Payload{
		PCM:        append([]byte(nil), audioData...),
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
		BitDepth:   format.BitsPerSample,
	}, nil
}

func parseFormat(body []byte) (*Format, error) {
	if len(body) < FmtChunkMinSize {
		return nil, &InvalidHeaderError{
			Details: fmt.Sprintf("'fmt ' chunk is %d bytes, need at least %d", len(body), FmtChunkMinSize),
		}
	}
	return &Format{
		AudioFormat:   binary.LittleEndian.Uint16(body[0:2]),
		Channels:      int(binary.LittleEndian.Uint16(body[2:4])),
		SampleRate:    binary.LittleEndian.Uint32(body[4:8]),
		BitsPerSample: int(binary.LittleEndian.Uint16(body[14:16])),
	}, nil
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (core.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Payload{}, fmt.Errorf("read WAV: %w", err)
	}
	return Decode(data)
}

// Encode wraps 16-bit PCM in a canonical 44-byte WAV header.
func Encode(pcm []byte, sampleRate uint32, channels int) []byte {
	const bitsPerSample = 16

	dataSize := uint32(len(pcm))
	blockAlign := channels * bitsPerSample / 8

	wav := make([]byte, TotalHeaderSize+len(pcm))

	copy(wav[0:4], "RIFF")
	binary.LittleEndian.PutUint32(wav[RiffChunkSizeOffset:8], TotalHeaderSize-8+dataSize)
	copy(wav[8:12], "WAVE")

	copy(wav[12:16], "fmt ")
	binary.LittleEndian.PutUint32(wav[16:20], FmtChunkMinSize)
	binary.LittleEndian.PutUint16(wav[20:22], FormatPCM)
	binary.LittleEndian.PutUint16(wav[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(wav[24:28], sampleRate)
	binary.LittleEndian.PutUint32(wav[28:32], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(wav[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(wav[34:36], bitsPerSample)

	copy(wav[36:40], "data")
	binary.LittleEndian.PutUint32(wav[40:44], dataSize)

	copy(wav[TotalHeaderSize:], pcm)
	return wav
}

// WriteFile encodes pcm and writes it to path.
func WriteFile(path string, pcm []byte, sampleRate uint32, channels int) error {
	if err := os.WriteFile(path, Encode(pcm, sampleRate, channels), 0644); err != nil {
		return fmt.Errorf("write WAV: %w", err)
	}
	return nil
}
