package audiometa

import (
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// TitleFromTags reads the embedded title tag of the audio file at path. Used
// to default an audio's display title when none is supplied with the upload.
// Returns "" when the file or its tags are unreadable.
func TitleFromTags(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(m.Title())
}
