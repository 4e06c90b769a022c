package timestamp

import (
	"os"
	"time"

	"github.com/evanoberholster/imagemeta"
	"github.com/rs/zerolog/log"
)

// EmbeddedImageDate extracts an embedded capture date from an image file's
// metadata, preferring DateTimeOriginal, then CreateDate, then ModifyDate.
// Any read or decode failure means the candidate is simply unavailable.
func EmbeddedImageDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	exif, err := imagemeta.Decode(f)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("No readable image metadata")
		return time.Time{}, false
	}

	for _, t := range []time.Time{exif.DateTimeOriginal(), exif.CreateDate(), exif.ModifyDate()} {
		if !t.IsZero() {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
