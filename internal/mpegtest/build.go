// SPDX-License-Identifier: EPL-2.0

package mpegtest

// HeaderSpec describes an MPEG audio frame header to synthesize for tests.
// All fields hold the raw bit values of the corresponding header fields,
// so reserved and disallowed patterns can be produced on purpose.
type HeaderSpec struct {
	VersionBits     byte // 2 bits: 00 V2.5, 01 reserved, 10 V2, 11 V1
	LayerBits       byte // 2 bits: 00 reserved, 01 L3, 10 L2, 11 L1
	Protection      bool
	BitrateIndex    byte // 4 bits
	SampleRateIndex byte // 2 bits
	Padded          bool
	Private         bool
	ChannelMode     byte // 2 bits
	ModeExtension   byte // 2 bits
	Copyright       bool
	Original        bool
	Emphasis        byte // 2 bits
}

// MPEG1Layer3 returns a spec for a typical MPEG1 Layer 3 stereo header
// with the protection bit set (no CRC).
func MPEG1Layer3(bitrateIndex, sampleRateIndex byte, padded bool) HeaderSpec {
	return HeaderSpec{
		VersionBits:     0b11,
		LayerBits:       0b01,
		Protection:      true,
		BitrateIndex:    bitrateIndex,
		SampleRateIndex: sampleRateIndex,
		Padded:          padded,
	}
}

// Bytes assembles the 4 header bytes.
func (s HeaderSpec) Bytes() []byte {
	b := make([]byte, 4)
	b[0] = 0xFF
	b[1] = 0xE0 | (s.VersionBits&0x3)<<3 | (s.LayerBits&0x3)<<1 | bit(s.Protection)
	b[2] = (s.BitrateIndex&0xF)<<4 | (s.SampleRateIndex&0x3)<<2 | bit(s.Padded)<<1 | bit(s.Private)
	b[3] = (s.ChannelMode&0x3)<<6 | (s.ModeExtension&0x3)<<4 | bit(s.Copyright)<<3 | bit(s.Original)<<2 | s.Emphasis&0x3
	return b
}

// Frames builds a stream of n back-to-back frames, each frameSize bytes
// long, starting with the given header bytes and padded with zeros.
func Frames(n int, header []byte, frameSize int) []byte {
	buf := make([]byte, 0, n*frameSize)
	for i := 0; i < n; i++ {
		frame := make([]byte, frameSize)
		copy(frame, header)
		buf = append(buf, frame...)
	}
	return buf
}

// ID3Tag builds an ID3v2.4 tag with a zero-filled payload of the given
// size, optionally closed by a footer.
func ID3Tag(payloadSize int, footer bool) []byte {
	var flags byte
	total := payloadSize + 10
	if footer {
		flags = 0x10
		total += 10
	}

	buf := make([]byte, total)
	copy(buf, "ID3")
	buf[3] = 4
	buf[5] = flags
	buf[6] = byte(payloadSize >> 21 & 0x7F)
	buf[7] = byte(payloadSize >> 14 & 0x7F)
	buf[8] = byte(payloadSize >> 7 & 0x7F)
	buf[9] = byte(payloadSize & 0x7F)

	if footer {
		copy(buf[total-10:], "3DI")
	}
	return buf
}

func bit(b bool) byte {
	if b {
		return 1
	}
	return 0
}
