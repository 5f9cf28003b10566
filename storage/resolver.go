package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/h2non/filetype"

	"github.com/soundvault/soundvault-backend/domain"
)

// Role identifies the entity/field an upload is destined for. Every role maps
// to a fixed directory under the upload root; anything else is unroutable.
type Role string

const (
	RoleCategoryImage    Role = "category-image"
	RoleSubCategoryImage Role = "subcategory-image"
	RoleArtistImage      Role = "artist-image"
	RoleAudioFile        Role = "audio-file"
	RoleAudioImage       Role = "audio-image"
	RoleAudioLyrics      Role = "audio-lyrics"
)

// PublicRoot is the path prefix every stored asset reference begins with,
// regardless of where the upload root lives on disk.
const PublicRoot = "uploads"

var roleDirs = map[Role]string{
	RoleCategoryImage:    "category/image",
	RoleSubCategoryImage: "subcategory/image",
	RoleArtistImage:      "artist/image",
	RoleAudioFile:        "audio/audioFile",
	RoleAudioImage:       "audio/image",
	RoleAudioLyrics:      "audio/lyricsFile",
}

var roleExts = map[Role]map[string]struct{}{
	RoleCategoryImage:    {".jpg": {}, ".jpeg": {}, ".png": {}},
	RoleSubCategoryImage: {".jpg": {}, ".jpeg": {}, ".png": {}},
	RoleArtistImage:      {".jpg": {}, ".jpeg": {}, ".png": {}},
	RoleAudioFile:        {".mp3": {}, ".m4a": {}},
	RoleAudioImage:       {".jpg": {}, ".jpeg": {}, ".png": {}},
	RoleAudioLyrics:      {".lrc": {}},
}

var roleMimes = map[Role]map[string]struct{}{
	RoleCategoryImage:    {"image/jpeg": {}, "image/png": {}},
	RoleSubCategoryImage: {"image/jpeg": {}, "image/png": {}},
	RoleArtistImage:      {"image/jpeg": {}, "image/png": {}},
	RoleAudioFile:        {"audio/mpeg": {}, "audio/mp4": {}, "audio/x-m4a": {}},
	RoleAudioImage:       {"image/jpeg": {}, "image/png": {}},
	RoleAudioLyrics:      {"text/lrc": {}, "application/octet-stream": {}},
}

// Dir returns the role directory relative to the upload root, or false for an
// unknown role.
func Dir(role Role) (string, bool) {
	dir, ok := roleDirs[role]
	return dir, ok
}

// DiskPath maps a stored public path ("uploads/…" or legacy "/uploads/…")
// onto the filesystem below the upload root.
func DiskPath(root, publicPath string) string {
	rel := strings.TrimPrefix(publicPath, "/")
	rel = strings.TrimPrefix(rel, PublicRoot+"/")
	return filepath.Join(root, filepath.FromSlash(rel))
}

// Upload is the boundary contract with the multipart intake layer.
type Upload struct {
	Filename string
	MIMEType string
	Size     int64
	Reader   io.Reader
}

// Resolver assigns on-disk destinations for uploaded assets.
type Resolver struct {
	root string
	now  func() time.Time
}

func NewResolver(root string) *Resolver {
	if root == "" {
		root = PublicRoot
	}
	return &Resolver{root: root, now: time.Now}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}

// Store validates the upload against the role's extension and MIME allow-list,
// writes the bytes under the role directory and returns the asset metadata to
// embed in the owning entity. For the lyrics role the declared MIME is not
// checked: content sniffing is unreliable for .lrc files. The extension
// allow-list still applies to every role.
func (r *Resolver) Store(role Role, up Upload) (*domain.Asset, error) {
	dir, ok := roleDirs[role]
	if !ok {
		return nil, fmt.Errorf("%w: role %q", domain.ErrUnroutableUpload, role)
	}

	name := sanitizeFilename(up.Filename)
	ext := strings.ToLower(filepath.Ext(name))
	mimeType := strings.ToLower(strings.TrimSpace(up.MIMEType))
	reader := up.Reader

	if _, ok := roleExts[role][ext]; !ok {
		return nil, fmt.Errorf("%w: extension %q not allowed for role %q", domain.ErrInvalidAssetType, ext, role)
	}

	if role != RoleAudioLyrics {
		// Octet-stream declarations are resolved by sniffing the header
		// before the allow-list check.
		if mimeType == "" || mimeType == "application/octet-stream" {
			sniffed, rest, err := sniffMIME(reader)
			if err != nil {
				return nil, fmt.Errorf("sniff upload %q: %w", name, err)
			}
			if sniffed != "" {
				mimeType = sniffed
			}
			reader = rest
		}

		if _, ok := roleMimes[role][mimeType]; !ok {
			return nil, fmt.Errorf("%w: mime %q not allowed for role %q", domain.ErrInvalidAssetType, mimeType, role)
		}
	}

	destDir := filepath.Join(r.root, filepath.FromSlash(dir))
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", destDir, err)
	}

	storedName := fmt.Sprintf("%d-%s", r.now().UnixMilli(), name)
	destPath := filepath.Join(destDir, storedName)

	f, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("create upload file %q: %w", destPath, err)
	}
	written, err := io.Copy(f, reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("write upload file %q: %w", destPath, err)
	}

	return &domain.Asset{
		File:     path.Join(PublicRoot, dir, storedName),
		FileName: storedName,
		FileType: mimeType,
		FileSize: written,
	}, nil
}

// sniffMIME reads the header of the stream, matches it against known
// signatures and hands back a reader that replays the consumed bytes.
func sniffMIME(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, 261)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", nil, err
	}
	head = head[:n]

	rest := io.MultiReader(bytes.NewReader(head), r)

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return "", rest, nil
	}
	return kind.MIME.Value, rest, nil
}
