// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"

	"github.com/chungtseng/manta/alignment"
)

// ScoreConfig is the affine gap scoring used by the aligner
type ScoreConfig struct {
	// reward for equal symbols
	Match int `mapstructure:"match"`

	// penalty for unequal symbols
	Mismatch int `mapstructure:"mismatch"`

	// one time penalty per gap
	GapOpen int `mapstructure:"gapOpen"`

	// penalty per base within a gap
	GapExtend int `mapstructure:"gapExtend"`

	// penalty per query base overhanging either end of the reference
	OffEdgePenalty int `mapstructure:"offEdgePenalty"`
}

// Config is the root-level settings struct, a mix of the settings file and
// command line flags
type Config struct {
	Scores ScoreConfig `mapstructure:"scores"`

	// number of aligning goroutines, 0 means one per CPU
	Threads int `mapstructure:"threads"`

	// reads matching less than this fraction of their aligned bases are dropped
	MinIdentity float64 `mapstructure:"min-identity"`
}

// SetDefaults registers the default settings with viper
func SetDefaults() {
	viper.SetDefault("scores.match", alignment.DefaultScores.Match)
	viper.SetDefault("scores.mismatch", alignment.DefaultScores.Mismatch)
	viper.SetDefault("scores.gapOpen", alignment.DefaultScores.Open)
	viper.SetDefault("scores.gapExtend", alignment.DefaultScores.Extend)
	viper.SetDefault("scores.offEdgePenalty", alignment.DefaultScores.OffEdge)
	viper.SetDefault("threads", 0)
	viper.SetDefault("min-identity", 0.0)
}

// NewConfig returns a new Config struct populated by Viper settings
func NewConfig() Config {
	var c Config

	err := viper.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// AlignmentScores converts the scoring settings for the aligner
func (c Config) AlignmentScores() alignment.Scores {
	return alignment.Scores{
		Match:    c.Scores.Match,
		Mismatch: c.Scores.Mismatch,
		Open:     c.Scores.GapOpen,
		Extend:   c.Scores.GapExtend,
		OffEdge:  c.Scores.OffEdgePenalty,
	}
}
