package audiometa

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/abema/go-mp4"
	"github.com/h2non/filetype"
	"go.senan.xyz/taglib"
)

// ZeroDuration is the degraded result used whenever extraction cannot
// produce a positive duration.
const ZeroDuration = "00:00"

// FormatDuration renders whole seconds as zero-padded MM:SS. Minutes are not
// capped at 59.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ExtractDuration derives the playback duration of the audio file at path,
// rounded to the nearest whole second, together with its MM:SS rendering.
//
// Duration is enrichment, not a publication requirement: a missing file, an
// empty file, an unparseable container or a non-positive stream duration all
// degrade to (0, "00:00") and no error is ever returned to the caller.
func ExtractDuration(path string) (int, string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return 0, ZeroDuration
	}

	seconds := probeSeconds(path)
	if seconds <= 0 {
		return 0, ZeroDuration
	}
	return seconds, FormatDuration(seconds)
}

func probeSeconds(path string) (seconds int) {
	defer func() {
		if r := recover(); r != nil {
			seconds = 0
		}
	}()

	properties, err := taglib.ReadProperties(path)
	if err == nil && properties.Length > 0 {
		return int(math.Round(properties.Length.Seconds()))
	}

	return mp4Seconds(path)
}

// mp4Seconds probes MP4-family containers directly; taglib handles the rest
// of the supported formats.
func mp4Seconds(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	head := make([]byte, 261)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return 0
	}
	kind, err := filetype.Match(head[:n])
	if err != nil || (kind.Extension != "mp4" && kind.Extension != "m4a") {
		return 0
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return 0
	}
	info, err := mp4.Probe(f)
	if err != nil || info.Timescale == 0 {
		return 0
	}
	return int(math.Round(float64(info.Duration) / float64(info.Timescale)))
}
