package mpeg_test

import (
	"fmt"

	"github.com/WickedA/mpaframes/mpeg"
)

func ExampleParseHeader() {
	// The classic 128 kbps, 44.1 kHz MPEG1 Layer 3 header word.
	buf := []byte{0xFF, 0xFB, 0x90, 0x00}

	h, err := mpeg.ParseHeader(buf, 0)
	if err != nil {
		fmt.Println("not a frame header:", err)
		return
	}

	fmt.Printf("MPEG%s Layer %d\n", h.Version, h.Layer)
	fmt.Printf("%d kbps, %d Hz, %s\n", h.Bitrate, h.SampleRate, h.ChannelMode)
	fmt.Printf("frame size %d bytes\n", h.FrameSize)
	// Output:
	// MPEG1 Layer 3
	// 128 kbps, 44100 Hz, stereo
	// frame size 417 bytes
}

func ExampleFirstHeader() {
	// The header hides behind bytes that cannot hold a sync pattern.
	buf := append(make([]byte, 32), 0xFF, 0xFB, 0x90, 0x00)

	h, err := mpeg.FirstHeader(buf, 0, len(buf)-1)
	if err != nil {
		fmt.Println("no header found")
		return
	}

	fmt.Printf("header at offset %d\n", h.Offset)
	// Output: header at offset 32
}

func ExampleNextHeader() {
	// Two back-to-back frames of 417 bytes each.
	buf := make([]byte, 834)
	copy(buf, []byte{0xFF, 0xFB, 0x90, 0x00})
	copy(buf[417:], []byte{0xFF, 0xFB, 0x90, 0x00})
	end := len(buf) - 1

	h, err := mpeg.FirstHeader(buf, 0, end)
	for err == nil {
		fmt.Printf("frame at %d\n", h.Offset)
		h, err = mpeg.NextHeader(buf, h, end)
	}
	// Output:
	// frame at 0
	// frame at 417
}
