// SPDX-License-Identifier: EPL-2.0

package mpaframes

import (
	"github.com/WickedA/mpaframes/id3"
	"github.com/WickedA/mpaframes/mpeg"
)

// Headers enumerates the valid MPEG audio frame headers in buf, in order.
//
// A leading ID3v2 tag is skipped before scanning starts. The walk follows
// each frame's declared size and re-validates at every landing point, so
// corrupt stretches are crossed by brute-force resynchronization rather
// than aborting the scan.
//
// limit caps how many headers are collected; limit <= 0 collects them all.
//
// Example:
//
//	headers := mpaframes.Headers(buf, 50)
//	for _, h := range headers {
//	    fmt.Printf("%08x %d kbps\n", h.Offset, h.Bitrate)
//	}
func Headers(buf []byte, limit int) []mpeg.Header {
	end := len(buf) - 1

	var headers []mpeg.Header

	h, err := mpeg.FirstHeader(buf, id3.TagSize(buf), end)
	for err == nil {
		headers = append(headers, h)
		if limit > 0 && len(headers) >= limit {
			break
		}
		h, err = mpeg.NextHeader(buf, h, end)
	}

	return headers
}

// FirstHeader returns the first valid frame header past any leading ID3v2
// tag, or mpeg.ErrNoHeader when buf holds none.
func FirstHeader(buf []byte) (mpeg.Header, error) {
	return mpeg.FirstHeader(buf, id3.TagSize(buf), len(buf)-1)
}
