// Package iocache provides durable storage for computed results and run
// history across sqlite, mysql and postgresql backends.
package iocache

import (
	"sync"

	"github.com/huangsam/wikitrend/internal/contract"
)

// StoreManagerImpl manages the configured cache and history stores.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	cache        contract.CacheStore
	history      contract.HistoryStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetCacheStore returns the result CacheStore, or nil when disabled.
func (mgr *StoreManagerImpl) GetCacheStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.cache
}

// GetHistoryStore returns the run HistoryStore, or nil when disabled.
func (mgr *StoreManagerImpl) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
