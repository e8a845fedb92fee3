// Copyright 2026 lnrlnrleite
// SPDX-License-Identifier: AGPL-3.0

// Package locking serializes operations per tenant id. Two concurrent
// updates or pipeline runs for the same tenant take turns; different
// tenants never contend.
package locking

import (
	"sync"
)

type entry struct {
	mu   sync.Mutex
	refs int
}

type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*entry)}
}

// Lock acquires the mutex for key and returns its release func. Entries are
// reference counted and removed when the last holder releases, so idle keys
// do not accumulate.
func (k *KeyedMutex) Lock(key string) func() {
	k.mu.Lock()
	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}
		k.mu.Unlock()
	}
}
