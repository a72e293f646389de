package repositories

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"
	"go.uber.org/zap"

	"listing-app/domain"
)

// CacheRepository define la interfaz para el caché del catálogo
type CacheRepository interface {
	Get(key string) ([]domain.Property, bool)
	Set(key string, properties []domain.Property, ttl time.Duration)
	Delete(key string)
}

// cacheData representa los datos almacenados en Memcached
type cacheData struct {
	Properties []domain.Property `json:"properties"`
}

// localTTLCap limita cuánto vive una entrada en el caché local, para que
// una invalidación que solo llegó a otra instancia no dure demasiado
const localTTLCap = 5 * time.Minute

// memcachedStore es la parte de *memcache.Client que usa el repositorio
type memcachedStore interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

// cacheRepository implementa CacheRepository con dos niveles: ccache local
// y Memcached opcional.
type cacheRepository struct {
	localCache      *ccache.Cache[[]domain.Property]
	memcachedClient memcachedStore
	logger          *zap.SugaredLogger

	// refillTTL es el TTL local de lo que se trae de Memcached. gomemcache no
	// devuelve la expiración del item, así que se usa el TTL configurado.
	refillTTL time.Duration
}

// NewCacheRepository crea el caché. Si memcachedHost está vacío solo se usa
// el nivel local. ttl es el TTL configurado del catálogo.
func NewCacheRepository(memcachedHost string, ttl time.Duration, logger *zap.SugaredLogger) CacheRepository {
	var client memcachedStore
	if memcachedHost != "" {
		client = memcache.New(memcachedHost)
		logger.Infof("Cache repository initialized with Memcached at %s", memcachedHost)
	} else {
		logger.Infof("Cache repository initialized (local only)")
	}
	return newCacheRepository(client, ttl, logger)
}

func newCacheRepository(client memcachedStore, ttl time.Duration, logger *zap.SugaredLogger) *cacheRepository {
	return &cacheRepository{
		localCache:      ccache.New(ccache.Configure[[]domain.Property]().MaxSize(1000)),
		memcachedClient: client,
		refillTTL:       localTTL(ttl),
		logger:          logger,
	}
}

// Get busca primero en el caché local y después en Memcached
func (r *cacheRepository) Get(key string) ([]domain.Property, bool) {
	item := r.localCache.Get(key)
	if item != nil && !item.Expired() {
		r.logger.Debugf("Cache HIT (local): key=%s", key)
		return item.Value(), true
	}

	if r.memcachedClient == nil {
		r.logger.Debugf("Cache MISS: key=%s", key)
		return nil, false
	}

	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			r.logger.Debugf("Cache MISS: key=%s", key)
		} else {
			r.logger.Warnf("Error getting from Memcached: key=%s, error=%v", key, err)
		}
		return nil, false
	}

	var data cacheData
	if err := json.Unmarshal(memcachedItem.Value, &data); err != nil {
		r.logger.Warnf("Error unmarshaling cache data from Memcached: key=%s, error=%v", key, err)
		return nil, false
	}

	// Guardar en local para próximas consultas
	r.localCache.Set(key, data.Properties, r.refillTTL)
	r.logger.Debugf("Cache HIT (Memcached): key=%s, stored in local cache", key)
	return data.Properties, true
}

// Set guarda en ambos niveles
func (r *cacheRepository) Set(key string, properties []domain.Property, ttl time.Duration) {
	r.localCache.Set(key, properties, localTTL(ttl))
	r.logger.Debugf("Cache SET (local): key=%s", key)

	if r.memcachedClient == nil {
		return
	}

	jsonData, err := json.Marshal(cacheData{Properties: properties})
	if err != nil {
		r.logger.Warnf("Error marshaling cache data for Memcached: key=%s, error=%v", key, err)
		return
	}

	// Memcached usa segundos
	item := &memcache.Item{
		Key:        key,
		Value:      jsonData,
		Expiration: int32(ttl / time.Second),
	}
	if err := r.memcachedClient.Set(item); err != nil {
		r.logger.Warnf("Error setting cache in Memcached: key=%s, error=%v", key, err)
		return
	}
	r.logger.Debugf("Cache SET (Memcached): key=%s, ttl=%s", key, ttl)
}

// Delete elimina de ambos niveles
func (r *cacheRepository) Delete(key string) {
	r.localCache.Delete(key)

	if r.memcachedClient == nil {
		return
	}
	if err := r.memcachedClient.Delete(key); err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		r.logger.Warnf("Error deleting from Memcached: key=%s, error=%v", key, err)
		return
	}
	r.logger.Debugf("Cache DELETE: key=%s", key)
}

func localTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > localTTLCap {
		return localTTLCap
	}
	return ttl
}
