package globemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyColorPalettes(t *testing.T) {
	cases := []struct {
		hint string
		want BiomeType
	}{
		{"#2d6a4f", BiomeForest},
		{"#40a060", BiomeForest},
		{"#1b4332", BiomeForest},
		{"#a8dadc", BiomeWater},
		{"#48cae4", BiomeWater},
		{"#bde0fe", BiomeWater},
		{"#e9c46a", BiomeDesert},
		{"#f4a261", BiomeDesert},
		{"#ffb703", BiomeDesert},
		{"#ffff00", BiomeBeach},
		{"#f1faee", BiomeSnow}, // white, matches nothing
		{"#ffffff", BiomeDesert}, // white caught by the "#ff" orange prefix
		{"#000000", BiomeSnow},
		{"", BiomeSnow},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyColor(tc.hint), "hint %q", tc.hint)
	}
}

func TestClassifyColorBeachBeatsDesertPrefix(t *testing.T) {
	// "#ffff00" also matches the desert "#ff" prefix; the beach marker
	// must take precedence.
	assert.Equal(t, BiomeBeach, ClassifyColor("#ffff00"))
	assert.Equal(t, BiomeBeach, ClassifyColor("  #FFFF00 "))
}

func TestClassifyColorForestBeatsLaterBuckets(t *testing.T) {
	// A green that also begins like nothing else: stays forest even
	// though water and desert are checked afterwards.
	assert.Equal(t, BiomeForest, ClassifyColor("#2d6a4f"))
}
