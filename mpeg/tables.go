// SPDX-License-Identifier: EPL-2.0

package mpeg

// bitrateTable holds bitrates in kbps, indexed by the 4-bit bitrate index.
// Columns are V1/L1, V1/L2, V1/L3, V2/L1 and the column shared by Layer 2
// and Layer 3 of MPEG2 and MPEG2.5. Index 0 is free format; index 15 is
// disallowed and never looked up.
var bitrateTable = [16][5]int{
	{0, 0, 0, 0, 0},
	{32, 32, 32, 32, 8},
	{64, 48, 40, 48, 16},
	{96, 56, 48, 56, 24},
	{128, 64, 56, 64, 32},
	{160, 80, 64, 80, 40},
	{192, 96, 80, 96, 48},
	{224, 112, 96, 112, 56},
	{256, 128, 112, 128, 64},
	{288, 160, 128, 144, 80},
	{320, 192, 160, 160, 96},
	{352, 224, 192, 176, 112},
	{384, 256, 224, 192, 128},
	{416, 320, 256, 224, 144},
	{448, 384, 320, 256, 160},
	{0, 0, 0, 0, 0},
}

// bitrateColumn maps a version and layer to a bitrateTable column.
func bitrateColumn(v Version, l Layer) int {
	if v == Version1 {
		return int(l) - 1
	}
	if l == Layer1 {
		return 3
	}
	return 4
}

// sampleRateTable holds sample rates in Hz, indexed by the 2-bit sample
// rate index. Columns are MPEG1, MPEG2, MPEG2.5. Index 3 is reserved and
// never looked up.
var sampleRateTable = [4][3]int{
	{44100, 22050, 11025},
	{48000, 24000, 12000},
	{32000, 16000, 8000},
	{0, 0, 0},
}

// bandLowerTable maps the mode extension bits to the lowest band that
// intensity stereo applies to, for Layer 1 and Layer 2 frames. The upper
// band is always 31.
var bandLowerTable = [4]uint8{4, 8, 12, 16}
