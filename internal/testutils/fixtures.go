package testutils

import (
	"path/filepath"
	"testing"

	"github.com/junglerando/rando-api/internal/placement/prices"
	"github.com/junglerando/rando-api/internal/settings"
)

const (
	// TestSeed is the seed used by fixture settings.
	TestSeed = 1234567

	// TestGenKey is a gen key in the shape browsers send.
	TestGenKey = "1718000000000"
)

// CreateTestSettings returns normalized settings that exercise every
// placement phase.
func CreateTestSettings() *settings.Settings {
	s := settings.Defaults()
	s.Seed = TestSeed
	s.RandomPrices = prices.WeightMedium
	s.MoveRando = settings.MoveRandoOn
	s.WrinklyLocationRando = true
	s.TnSLocationRando = true
	s.RandomFairies = true
	s.RandomizeCoinRequirements = true
	s.Normalize()
	return s
}

// CreateTestSettingsBody returns a POST body the settings page could send.
func CreateTestSettingsBody() []byte {
	return []byte(`{
		"seed": "1234567",
		"generate_spoilerlog": false,
		"random_prices": "medium",
		"move_rando": "on",
		"wrinkly_location_rando": true,
		"tns_location_rando": true,
		"random_fairies": true,
		"randomize_coin_requirements": true,
		"blocker_text": 60
	}`)
}

// TempErrorLogPath returns a sqlite path inside the test's temp dir.
func TempErrorLogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "errors.db")
}
