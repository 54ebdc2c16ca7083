package flactag

import (
	"github.com/simonhull/flactag/internal/block"
)

// CueSheet holds a CUESHEET block. Parse decodes it.
type CueSheet = block.CueSheet

// Decoded CUESHEET content.
type (
	CueSheetInfo = block.CueSheetInfo
	CueTrack     = block.CueTrack
	CueIndex     = block.CueIndex
)

// LeadOutTrack is the track number of a cue sheet's lead-out track.
const LeadOutTrack = block.LeadOutTrack
