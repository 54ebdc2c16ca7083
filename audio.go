package flactag

import (
	"github.com/simonhull/flactag/internal/block"
)

// AudioInfo is the decoded content of a STREAMINFO block.
type AudioInfo = block.AudioInfo

// AudioInfoOf returns the decoded STREAMINFO of tag. The boolean is false if
// the tag has no STREAMINFO block or it is too short to decode.
func AudioInfoOf(tag *Tag) (AudioInfo, bool) {
	for _, b := range tag.BlocksWithType(TypeStreamInfo) {
		si, ok := b.(*StreamInfo)
		if !ok {
			continue
		}
		info, err := si.Info()
		if err != nil {
			return AudioInfo{}, false
		}
		return info, true
	}
	return AudioInfo{}, false
}
