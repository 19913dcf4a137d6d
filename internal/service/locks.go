package service

import "sync"

// keyedMutex hands out one mutex per key. Operations sharing a key are
// serialized; distinct keys proceed in parallel. Used with property ids to
// make availability-check-then-create atomic, and with host ids to keep
// ledger balance checks consistent with postings.
//
// Entries are never evicted: the map grows to the number of distinct keys
// seen over the process lifetime, bounded by the property and host id spaces.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int32]*sync.Mutex)}
}

func (k *keyedMutex) Lock(key int32) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
}

func (k *keyedMutex) Unlock(key int32) {
	k.mu.Lock()
	m := k.locks[key]
	k.mu.Unlock()
	m.Unlock()
}
