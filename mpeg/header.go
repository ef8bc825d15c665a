// SPDX-License-Identifier: EPL-2.0

package mpeg

import "encoding/binary"

// HeaderLen is the size of an MPEG audio frame header in bytes.
const HeaderLen = 4

// Version is the MPEG audio version of a frame.
type Version uint8

const (
	Version1  Version = 1
	Version2  Version = 2
	Version25 Version = 3 // MPEG Version 2.5
)

func (v Version) String() string {
	switch v {
	case Version1:
		return "1"
	case Version2:
		return "2"
	case Version25:
		return "2.5"
	}
	return "?"
}

// Layer is the MPEG audio layer of a frame. Layer 3 is MP3, Layer 2 is
// MP2, Layer 1 is MP1.
type Layer uint8

const (
	Layer1 Layer = 1
	Layer2 Layer = 2
	Layer3 Layer = 3
)

// ChannelMode is the channel mode of a frame. The values match the raw
// 2-bit field in the header.
type ChannelMode uint8

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

func (m ChannelMode) String() string {
	switch m {
	case Stereo:
		return "stereo"
	case JointStereo:
		return "joint stereo"
	case DualChannel:
		return "dual channel"
	case Mono:
		return "mono"
	}
	return "?"
}

// Emphasis tells a decoder how to de-emphasize the audio. The values match
// the raw 2-bit field in the header; EmphasisReserved is a real, distinct
// field value, not an invalid header.
type Emphasis uint8

const (
	EmphasisNone Emphasis = iota
	Emphasis5015
	EmphasisCCITTJ17
	EmphasisReserved
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisNone:
		return "none"
	case Emphasis5015:
		return "50/15 ms"
	case EmphasisCCITTJ17:
		return "CCITT J.17"
	case EmphasisReserved:
		return "reserved"
	}
	return "?"
}

// Header is a fully resolved MPEG audio frame header. Headers are produced
// by ParseHeader and never mutated afterwards.
type Header struct {
	// Offset of the header's first byte in the buffer it was parsed from.
	Offset int

	// FrameSize is the total frame size in bytes, header included. It is 0
	// for free format frames, whose size cannot be derived from the header.
	FrameSize int

	Version Version
	Layer   Layer

	// CRCEnabled holds the protection bit exactly as it appears on the
	// wire, where a set bit actually means no CRC follows the header. Kept
	// uninverted; do not "fix" it.
	CRCEnabled bool

	// Bitrate in kbps. 0 means free format, not an error.
	Bitrate int

	// SampleRate in Hz.
	SampleRate int

	// Padded reports whether the frame carries one extra byte of padding.
	Padded bool

	ChannelMode ChannelMode

	// BandLower and BandUpper delimit the bands intensity stereo applies
	// to. Only meaningful for Layer 1 and Layer 2 frames.
	BandLower uint8
	BandUpper uint8

	// IntensityStereo and MSStereo report the joint stereo features in
	// use. Only meaningful for Layer 3 frames.
	IntensityStereo bool
	MSStereo        bool

	Copyright bool
	Original  bool
	Emphasis  Emphasis
}

// headerWord is the 4-byte header read as a big-endian word. Its methods
// extract the raw fixed-width sub-fields; validity judgments belong to
// ParseHeader.
type headerWord uint32

func (w headerWord) syncOK() bool { return w&0xFFE00000 == 0xFFE00000 }

func (w headerWord) versionBits() uint32 { return uint32(w>>19) & 0x3 }

func (w headerWord) layerBits() uint32 { return uint32(w>>17) & 0x3 }

func (w headerWord) protectionBit() bool { return w>>16&1 == 1 }

func (w headerWord) bitrateIndex() int { return int(w>>12) & 0xF }

func (w headerWord) sampleRateIndex() int { return int(w>>10) & 0x3 }

func (w headerWord) paddingBit() bool { return w>>9&1 == 1 }

func (w headerWord) channelMode() ChannelMode { return ChannelMode(w >> 6 & 0x3) }

func (w headerWord) modeExtension() int { return int(w>>4) & 0x3 }

func (w headerWord) copyrightBit() bool { return w>>3&1 == 1 }

func (w headerWord) originalBit() bool { return w>>2&1 == 1 }

func (w headerWord) emphasis() Emphasis { return Emphasis(w & 0x3) }

// ParseHeader reads the 4 bytes at offset and resolves them into a Header.
// A reserved or disallowed bit pattern returns one of the sentinel errors
// and the zero Header; during a scan this is a normal outcome, not a fault.
func ParseHeader(buf []byte, offset int) (Header, error) {
	if offset < 0 || len(buf)-offset < HeaderLen {
		return Header{}, ErrShortBuffer
	}

	w := headerWord(binary.BigEndian.Uint32(buf[offset:]))

	if !w.syncOK() {
		return Header{}, ErrNoSync
	}

	var version Version
	switch w.versionBits() {
	case 0b00:
		version = Version25
	case 0b10:
		version = Version2
	case 0b11:
		version = Version1
	default:
		return Header{}, ErrReservedVersion
	}

	var layer Layer
	switch w.layerBits() {
	case 0b01:
		layer = Layer3
	case 0b10:
		layer = Layer2
	case 0b11:
		layer = Layer1
	default:
		return Header{}, ErrReservedLayer
	}

	bitrateIdx := w.bitrateIndex()
	if bitrateIdx == 0xF {
		return Header{}, ErrBadBitrate
	}
	bitrate := bitrateTable[bitrateIdx][bitrateColumn(version, layer)]

	sampleRateIdx := w.sampleRateIndex()
	if sampleRateIdx == 0x3 {
		return Header{}, ErrBadSampleRate
	}
	sampleRate := sampleRateTable[sampleRateIdx][version-1]

	h := Header{
		Offset:      offset,
		Version:     version,
		Layer:       layer,
		CRCEnabled:  w.protectionBit(),
		Bitrate:     bitrate,
		SampleRate:  sampleRate,
		Padded:      w.paddingBit(),
		ChannelMode: w.channelMode(),
		Copyright:   w.copyrightBit(),
		Original:    w.originalBit(),
		Emphasis:    w.emphasis(),
	}

	// Layer 3 uses the mode extension bits to switch the joint stereo
	// features; Layers 1 and 2 use them to select the intensity stereo
	// band range.
	if layer == Layer3 {
		switch w.modeExtension() {
		case 0b01:
			h.IntensityStereo = true
		case 0b10:
			h.IntensityStereo = true
			h.MSStereo = true
		case 0b11:
			h.MSStereo = true
		}
	} else {
		h.BandLower = bandLowerTable[w.modeExtension()]
		h.BandUpper = 31
	}

	// The frame size formula divides by the sample rate and multiplies by
	// the bitrate; free format frames (bitrate 0) have no derivable size
	// and keep FrameSize at 0.
	if bitrate != 0 && sampleRate != 0 {
		h.FrameSize = 144 * bitrate * 1000 / sampleRate
		if h.Padded {
			h.FrameSize++
		}
	}

	return h, nil
}
