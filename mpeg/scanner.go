// SPDX-License-Identifier: EPL-2.0

package mpeg

// FirstHeader scans candidate byte offsets from start to end inclusive and
// returns the first one that parses as a valid frame header, or ErrNoHeader
// when the range is exhausted.
//
// The sync pattern is only probabilistically unambiguous, so this is a
// brute-force byte-by-byte search; a false positive on non-header data is
// possible but rare, and a later NextHeader call recovers from it by
// resynchronizing the same way.
func FirstHeader(buf []byte, start, end int) (Header, error) {
	if start < 0 {
		start = 0
	}
	if end > len(buf)-1 {
		end = len(buf) - 1
	}

	for off := start; off <= end; off++ {
		h, err := ParseHeader(buf, off)
		if err != nil {
			continue
		}
		return h, nil
	}

	return Header{}, ErrNoHeader
}

// NextHeader skips past prev's frame and scans for the next valid header up
// to end inclusive. The computed position is re-validated rather than
// trusted: if the stream is corrupt or the frame size has drifted, the scan
// falls back to locating the next sync pattern byte by byte.
//
// Free format frames carry no derivable frame size, so the scan resumes at
// the byte after prev instead of jumping by zero.
func NextHeader(buf []byte, prev Header, end int) (Header, error) {
	skip := prev.FrameSize
	if skip < HeaderLen {
		skip = 1
	}
	return FirstHeader(buf, prev.Offset+skip, end)
}
