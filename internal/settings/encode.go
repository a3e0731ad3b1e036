package settings

import (
	"encoding/base64"
	"encoding/json"

	"github.com/cespare/xxhash/v2"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/rng"
)

// HashLength is the number of pictures shown on the file select screen.
const HashLength = 5

// hashPictures is the number of distinct pictures a hash slot can show.
const hashPictures = 10

// EncodeString renders the settings as a compact string suitable for
// sharing and for the error table.
func (s *Settings) EncodeString() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode settings")
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeString parses a string produced by EncodeString.
func DecodeString(encoded string) (*Settings, error) {
	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.InvalidArgumentf("settings string is not valid base64: %v", err)
	}
	s := Defaults()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, errors.InvalidArgumentf("settings string is not valid: %v", err)
	}
	return s, nil
}

// SeedHash returns the picture indices identifying this seed. Two requests
// with the same settings string get the same hash.
func (s *Settings) SeedHash() ([HashLength]int, error) {
	var hash [HashLength]int
	encoded, err := s.EncodeString()
	if err != nil {
		return hash, err
	}
	src := rng.New(int64(xxhash.Sum64String(encoded)))
	for i := range hash {
		hash[i] = src.Intn(hashPictures)
	}
	return hash, nil
}
