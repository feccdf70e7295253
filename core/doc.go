// Package core holds the ESX image container: validation, the fixed section
// map, sample header access and the sample lifecycle.
//
// Offsets stored in sample headers are relative to AddrSampleData. New
// payloads are always appended after the largest offset in use, so existing
// audio is never overwritten.
package core
