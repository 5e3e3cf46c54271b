// Package cache holds large read-only objects, loaded automata mostly, so
// that repeated queries (from the shell, say) don't reload them.
package cache

import (
	"fmt"
	"sync"

	"github.com/domino14/wordplay/config"
	"github.com/rs/zerolog/log"
)

type cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type loadFunc func(cfg *config.Config, key string) (interface{}, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (interface{}, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]interface{})}
	})
}

// Load returns the object cached under key, loading it with loadFunc the
// first time.
func Load(cfg *config.Config, key string, loadFunc loadFunc) (interface{}, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, key, loadFunc)
}

// LoadAs is Load with the object asserted to T.
func LoadAs[T any](cfg *config.Config, key string, loadFunc loadFunc) (T, error) {
	var zero T
	obj, err := Load(cfg, key, loadFunc)
	if err != nil {
		return zero, err
	}
	t, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("cached object %q is a %T, not a %T", key, obj, zero)
	}
	return t, nil
}

// Evict drops the object cached under key, if any.
func Evict(key string) {
	CreateGlobalObjectCache()
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	delete(GlobalObjectCache.objects, key)
}
