// SPDX-License-Identifier: EPL-2.0

package mpeg

import "errors"

var (
	ErrShortBuffer     = errors.New("not enough bytes for a frame header")
	ErrNoSync          = errors.New("frame sync bits not set")
	ErrReservedVersion = errors.New("reserved MPEG version")
	ErrReservedLayer   = errors.New("reserved MPEG layer")
	ErrBadBitrate      = errors.New("disallowed bitrate index")
	ErrBadSampleRate   = errors.New("reserved sample rate index")
	ErrNoHeader        = errors.New("no valid frame header found")
)
