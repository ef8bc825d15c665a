// SPDX-License-Identifier: EPL-2.0

package id3

// TagHeaderLen is the fixed size of an ID3v2 tag header (and of the
// optional footer).
const TagHeaderLen = 10

// footer-present flag in the tag header flags byte
const flagFooter = 0x10

// TagHeader is the fixed 10-byte header that starts every ID3v2 tag.
type TagHeader struct {
	Version  byte
	Revision byte
	Flags    byte

	// Size is the tag payload size in bytes, excluding the header and the
	// optional footer.
	Size int
}

// HasFooter reports whether a 10-byte footer closes the tag.
func (h TagHeader) HasFooter() bool {
	return h.Flags&flagFooter != 0
}

// TotalSize is the full byte length of the tag, header and footer
// included. It is the offset at which MPEG audio data can start.
func (h TagHeader) TotalSize() int {
	if h.HasFooter() {
		return h.Size + 2*TagHeaderLen
	}
	return h.Size + TagHeaderLen
}

// ParseTagHeader reads an ID3v2 tag header from the start of buf. The
// second return value is false when buf does not start with one.
func ParseTagHeader(buf []byte) (TagHeader, bool) {
	if len(buf) < TagHeaderLen {
		return TagHeader{}, false
	}
	if buf[0] != 'I' || buf[1] != 'D' || buf[2] != '3' {
		return TagHeader{}, false
	}

	return TagHeader{
		Version:  buf[3],
		Revision: buf[4],
		Flags:    buf[5],
		Size:     synchsafe(buf[6:10]),
	}, true
}

// TagSize returns the full byte length of a leading ID3v2 tag, or 0 when
// buf does not start with one.
func TagSize(buf []byte) int {
	h, ok := ParseTagHeader(buf)
	if !ok {
		return 0
	}
	return h.TotalSize()
}

// synchsafe decodes a 32-bit synchsafe integer: four base-128 digits, most
// significant first, with the high bit of each byte always clear.
func synchsafe(b []byte) int {
	return int(b[0]&0x7F)<<21 |
		int(b[1]&0x7F)<<14 |
		int(b[2]&0x7F)<<7 |
		int(b[3]&0x7F)
}
