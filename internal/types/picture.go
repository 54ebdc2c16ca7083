package types

import "strconv"

// PictureType categorizes the purpose/content of an embedded picture.
//
// Codes are shared with the ID3v2 APIC frame.
// See: https://xiph.org/flac/format.html#metadata_block_picture
type PictureType uint32

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	PictureOther:             "Other",
	PictureIcon:              "File icon",
	PictureOtherIcon:         "Other file icon",
	PictureFrontCover:        "Front cover",
	PictureBackCover:         "Back cover",
	PictureLeaflet:           "Leaflet page",
	PictureMedia:             "Media",
	PictureLeadArtist:        "Lead artist",
	PictureArtist:            "Artist",
	PictureConductor:         "Conductor",
	PictureBand:              "Band",
	PictureComposer:          "Composer",
	PictureLyricist:          "Lyricist",
	PictureRecordingLocation: "Recording location",
	PictureDuringRecording:   "During recording",
	PictureDuringPerformance: "During performance",
	PictureVideoCapture:      "Video capture",
	PictureBrightFish:        "A bright colored fish",
	PictureIllustration:      "Illustration",
	PictureBandLogotype:      "Band logotype",
	PicturePublisherLogotype: "Publisher logotype",
}

// String returns a human-readable name for the picture type.
//
// Codes outside the defined range are kept as-is when decoding and
// rendered as "PictureType(N)".
func (p PictureType) String() string {
	if int(p) < len(pictureTypeNames) {
		return pictureTypeNames[p]
	}
	return "PictureType(" + strconv.FormatUint(uint64(p), 10) + ")"
}
