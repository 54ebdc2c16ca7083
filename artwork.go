package flactag

import (
	"github.com/simonhull/flactag/internal/block"
	"github.com/simonhull/flactag/internal/types"
)

// Picture is an embedded image.
type Picture = block.Picture

// PictureType categorizes the purpose of an embedded picture. Codes are
// shared with the ID3v2 APIC frame.
type PictureType = types.PictureType

// Re-export all picture type constants
const (
	PictureOther             = types.PictureOther
	PictureIcon              = types.PictureIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureFrontCover        = types.PictureFrontCover
	PictureBackCover         = types.PictureBackCover
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureVideoCapture      = types.PictureVideoCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogotype      = types.PictureBandLogotype
	PicturePublisherLogotype = types.PicturePublisherLogotype
)
