package gaddag

import (
	"path/filepath"
	"strings"

	"github.com/domino14/wordplay/config"
)

// CacheKeyPrefix prefixes the cache key of every automaton.
const CacheKeyPrefix = "gaddag:"

// CacheKey returns the key under which the named lexicon's automaton of
// the given type is cached.
func CacheKey(lexiconName string, typ Type) string {
	return CacheKeyPrefix + lexiconName + typ.Extension()
}

// CacheLoadFunc is the function that loads an automaton into the global
// cache. A bare filename in the key is looked up under the configured
// lexicon path; anything with a directory in it is used as is.
func CacheLoadFunc(cfg *config.Config, key string) (interface{}, error) {
	filename := strings.TrimPrefix(key, CacheKeyPrefix)
	if filepath.Base(filename) == filename {
		filename = filepath.Join(cfg.GetString(config.ConfigLexiconPath), filename)
	}
	return LoadFile(filename)
}
