// Package artifact packs a finished seed into the zip the client downloads.
package artifact

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"io"
	"strings"

	"github.com/junglerando/rando-api/internal/errors"
)

// Entry names inside the zip.
const (
	EntryPatch      = "patch"
	EntryHash       = "hash"
	EntrySpoilerLog = "spoiler_log"
	EntrySeedID     = "seed_id"
)

// lineLength matches MIME base64 wrapping.
const lineLength = 76

// Artifact is the content of one download.
type Artifact struct {
	Patch      []byte
	Hash       string
	SpoilerLog []byte
	SeedID     string
}

// Build zips the artifact and returns it as base64 text wrapped every 76
// characters, each line ending in a newline.
func Build(a *Artifact) (string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		data []byte
	}{
		{EntryPatch, a.Patch},
		{EntryHash, []byte(a.Hash)},
		{EntrySpoilerLog, a.SpoilerLog},
		{EntrySeedID, []byte(a.SeedID)},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return "", errors.Wrapf(err, "failed to add %s to artifact", e.name)
		}
		if _, err := w.Write(e.data); err != nil {
			return "", errors.Wrapf(err, "failed to write %s to artifact", e.name)
		}
	}
	if err := zw.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish artifact")
	}

	return wrap(base64.StdEncoding.EncodeToString(buf.Bytes())), nil
}

func wrap(encoded string) string {
	var b strings.Builder
	b.Grow(len(encoded) + len(encoded)/lineLength + 1)
	for len(encoded) > lineLength {
		b.WriteString(encoded[:lineLength])
		b.WriteByte('\n')
		encoded = encoded[lineLength:]
	}
	if encoded != "" {
		b.WriteString(encoded)
		b.WriteByte('\n')
	}
	return b.String()
}

// Read decodes text produced by Build. Whitespace in the text is ignored.
func Read(encoded string) (*Artifact, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, encoded)

	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, errors.InvalidArgumentf("artifact is not valid base64: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.InvalidArgumentf("artifact is not a zip archive: %v", err)
	}

	files := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", f.Name)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", f.Name)
		}
		files[f.Name] = content
	}

	for _, name := range []string{EntryPatch, EntryHash, EntrySpoilerLog, EntrySeedID} {
		if _, ok := files[name]; !ok {
			return nil, errors.InvalidArgumentf("artifact has no %s entry", name)
		}
	}

	return &Artifact{
		Patch:      files[EntryPatch],
		Hash:       string(files[EntryHash]),
		SpoilerLog: files[EntrySpoilerLog],
		SeedID:     string(files[EntrySeedID]),
	}, nil
}
