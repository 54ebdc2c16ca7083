package block

import (
	"fmt"
	"strconv"
)

// Describe returns a one-line summary of b for listings.
func Describe(b Block) string {
	switch b := b.(type) {
	case *StreamInfo:
		info, err := b.Info()
		if err != nil {
			return fmt.Sprintf("%d bytes (unreadable)", len(b.Data))
		}
		return info.String()
	case *Padding:
		return fmt.Sprintf("%d bytes", b.Size)
	case *Application:
		return fmt.Sprintf("id %s, %d bytes", strconv.Quote(string(b.ID[:])), len(b.Data))
	case *SeekTable:
		return fmt.Sprintf("%d seek points", b.Points())
	case *VorbisComment:
		if b.Comments == nil {
			return "empty"
		}
		return fmt.Sprintf("vendor %q, %d comments", b.Vendor, b.Len())
	case *CueSheet:
		info, err := b.Parse()
		if err != nil {
			return fmt.Sprintf("%d bytes (unreadable)", len(b.Data))
		}
		return fmt.Sprintf("%d tracks", len(info.Tracks))
	case *Picture:
		return b.String()
	case *Unknown:
		return fmt.Sprintf("%d bytes", len(b.Data))
	default:
		return ""
	}
}
