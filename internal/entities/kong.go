package entities

import "github.com/junglerando/rando-api/internal/errors"

// Kong is one of the five playable characters.
type Kong string

// Kongs in game order. The order matters: ordinals in settings refer to it.
const (
	KongDonkey Kong = "donkey"
	KongDiddy  Kong = "diddy"
	KongLanky  Kong = "lanky"
	KongTiny   Kong = "tiny"
	KongChunky Kong = "chunky"
)

// AllKongs lists every kong in game order.
var AllKongs = []Kong{KongDonkey, KongDiddy, KongLanky, KongTiny, KongChunky}

func (k Kong) String() string { return string(k) }

// Index returns the kong's ordinal, -1 for an unknown kong.
func (k Kong) Index() int { return indexOf(AllKongs, k) }

// DisplayName is the capitalised name used in hints.
func (k Kong) DisplayName() string {
	switch k {
	case KongDonkey:
		return "Donkey"
	case KongDiddy:
		return "Diddy"
	case KongLanky:
		return "Lanky"
	case KongTiny:
		return "Tiny"
	case KongChunky:
		return "Chunky"
	}
	return string(k)
}

// ParseKong accepts a kong name or ordinal.
func ParseKong(s string) (Kong, error) {
	if k, ok := parseName(AllKongs, s); ok {
		return k, nil
	}
	return "", errors.InvalidArgumentf("unknown kong %q", s)
}

// UnmarshalJSON accepts names and ordinals.
func (k *Kong) UnmarshalJSON(data []byte) error {
	v, ok := parseJSON(AllKongs, data)
	if !ok {
		return errors.InvalidArgumentf("unknown kong %s", string(data))
	}
	*k = v
	return nil
}
