// SPDX-License-Identifier: EPL-2.0

// Package mpaframes enumerates MPEG audio (MP3/MP2/MP1) frame headers in a
// raw byte buffer without decoding any audio.
//
// The package answers one question: where are the frames in this buffer,
// and what do their headers say? Input is treated as untrusted. Every
// candidate header is validated, and when a frame boundary does not hold
// the scan resynchronizes byte by byte until the next sync pattern.
//
// # Quick Start
//
// The simplest way to inspect a buffer is Headers:
//
//	buf, _ := os.ReadFile("audio.mp3")
//	headers := mpaframes.Headers(buf, 0)
//	for _, h := range headers {
//	    fmt.Printf("%08x: MPEG%s Layer %d, %d kbps, %d Hz\n",
//	        h.Offset, h.Version, h.Layer, h.Bitrate, h.SampleRate)
//	}
//
// A leading ID3v2 tag is skipped automatically; scanning starts at the
// first byte of audio data.
//
// # Lower-Level Access
//
// For more control, use the subpackages directly:
//
//	start := id3.TagSize(buf)
//	end := len(buf) - 1
//	h, err := mpeg.FirstHeader(buf, start, end)
//	for err == nil {
//	    // inspect h
//	    h, err = mpeg.NextHeader(buf, h, end)
//	}
//
// The mpeg package holds the header parser and frame scanner; the id3
// package measures leading ID3v2 tags so the scan does not start inside
// metadata.
//
// # Buffers
//
// The whole input lives in memory: callers own the buffer, the scan only
// reads it. Nothing here opens files or streams; pair the package with
// os.ReadFile or any other loader.
//
// # Limitations
//
// Note:
//   - No audio decoding; headers only.
//   - No tag reading or writing beyond the ID3v2 size skip.
//   - Free format frames are reported but cannot be sized, so the scan
//     falls back to a byte-by-byte search after one.
package mpaframes
