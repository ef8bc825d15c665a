// SPDX-License-Identifier: EPL-2.0

// Package mpeg parses MPEG audio (MP3/MP2/MP1) frame headers from an
// in-memory buffer and walks a buffer frame to frame. It never decodes
// audio samples and never performs I/O.
//
// # Frame Headers
//
// Every MPEG audio frame starts with a 4-byte header whose top 11 bits are
// all set (the sync pattern). ParseHeader reads the header at a given
// offset and resolves every field, including the frame's total size:
//
//	h, err := mpeg.ParseHeader(buf, 0)
//	if err != nil {
//	    // not a frame header at this offset
//	}
//	fmt.Println(h.Version, h.Layer, h.Bitrate, h.SampleRate)
//
// A header is either fully resolved or rejected with one of the sentinel
// errors (ErrNoSync, ErrReservedVersion, ErrReservedLayer, ErrBadBitrate,
// ErrBadSampleRate, ErrShortBuffer). Rejection is the expected outcome for
// most offsets of a scan and carries no further meaning.
//
// # Scanning
//
// Buffers of unknown content are searched with FirstHeader, which tries
// every byte offset in a range, and walked with NextHeader, which skips a
// known frame and re-validates at the landing point:
//
//	end := len(buf) - 1
//	h, err := mpeg.FirstHeader(buf, 0, end)
//	for err == nil {
//	    fmt.Printf("%08x: %d bytes\n", h.Offset, h.FrameSize)
//	    h, err = mpeg.NextHeader(buf, h, end)
//	}
//
// The walk is a synchronous pull sequence: each call yields at most one
// header and the caller decides when to stop. Corrupt data only costs a
// byte-by-byte rescan until the next sync pattern.
//
// # Free Format
//
// A bitrate index of zero marks a free format frame. Its header is valid
// but its frame size cannot be derived, so FrameSize is 0 and NextHeader
// resumes scanning at the following byte instead of jumping.
//
// # Concurrency
//
// All functions are pure and read-only over the buffer; concurrent scans
// over the same or different buffers need no synchronization.
package mpeg
