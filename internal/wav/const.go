package wav

const (
	RiffChunkIDSize   = 4 // "RIFF"
	RiffChunkSizeSize = 4
	WaveIDSize        = 4 // "WAVE"

	ChunkIDSize     = 4
	ChunkSizeSize   = 4
	ChunkHeaderSize = ChunkIDSize + ChunkSizeSize

	RiffHeaderSize  = RiffChunkIDSize + RiffChunkSizeSize + WaveIDSize // 12
	FmtChunkMinSize = 16
	TotalHeaderSize = 44 // canonical header written by Encode

	RiffChunkSizeOffset = RiffChunkIDSize
)

const (
	FormatPCM        = 1
	FormatExtensible = 0xFFFE
)
