package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLexiconPath = "lexicon-path"
	ConfigLexicon     = "lexicon"
	ConfigDebug       = "debug"
	ConfigThreads     = "threads"
	ConfigNumPlays    = "num-plays"
	ConfigFile        = "config"
)

// EnvPrefix prefixes every environment variable we read, so that
// WORDPLAY_LEXICON_PATH sets lexicon-path.
const EnvPrefix = "WORDPLAY"

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with just the defaults set.
func DefaultConfig() *Config {
	c := &Config{viper.New()}
	c.SetDefault(ConfigLexiconPath, "./data/lexica")
	c.SetDefault(ConfigLexicon, "words.gaddag")
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigNumPlays, 15)
	return c
}

// Load layers the environment and the optional YAML config file on top of
// the defaults. flags may be nil; if not, they override everything else.
func (c *Config) Load(flags *pflag.FlagSet) error {
	c.SetEnvPrefix(EnvPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if flags != nil {
		if err := c.BindPFlags(flags); err != nil {
			return err
		}
	}
	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

// Threads returns the number of board search workers, at least 1.
func (c *Config) Threads() int {
	if n := c.GetInt(ConfigThreads); n > 0 {
		return n
	}
	return 1
}
