// SPDX-License-Identifier: EPL-2.0

// Package id3 detects a leading ID3v2 tag and reports its total byte
// length, so that MPEG audio scanning can start past metadata that is not
// audio data. It does not read or write tag frames.
package id3
