// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cache

import (
	"sync"

	"github.com/loopy-algebra/loopy/pkg/term"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Manager memoises materialised terms.  Entries become stale whenever the
// underlying model changes, at which point the whole cache is invalidated; no
// attempt is made to patch individual entries.
//
// A manager may be shared between goroutines.  Tables are built outside of the
// lock, such that independent terms can be materialised in parallel.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*Entry
	// Incremented on every invalidation, so that a table built from a model
	// which has since changed is never inserted.
	generation    uint64
	hits          prometheus.Counter
	misses        prometheus.Counter
	invalidations prometheus.Counter
}

// NewManager constructs an empty cache manager.
func NewManager() *Manager {
	return &Manager{
		entries: make(map[string]*Entry),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "loopy", Subsystem: "cache", Name: "hits_total",
			Help: "Number of term tables served from the cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "loopy", Subsystem: "cache", Name: "misses_total",
			Help: "Number of term tables which had to be materialised.",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "loopy", Subsystem: "cache", Name: "invalidations_total",
			Help: "Number of times the cache was invalidated by a model update.",
		}),
	}
}

// Collectors returns the metrics maintained by this manager, for registration
// with a prometheus registry.
func (m *Manager) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.hits, m.misses, m.invalidations}
}

// Get returns the entry with a given key, if it is cached.
func (m *Manager) Get(key string) (*Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	//
	e, ok := m.entries[key]
	//
	return e, ok
}

// Put caches a given entry, replacing any existing entry with the same key.
func (m *Manager) Put(e *Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	//
	m.entries[e.Key()] = e
}

// GetOrMake returns the cached entry for a term, materialising (and caching)
// it with the given maker if necessary.
func (m *Manager) GetOrMake(t *term.Term, maker *Maker) (*Entry, error) {
	key := Key(t)
	//
	m.mu.Lock()
	e, ok := m.entries[key]
	generation := m.generation
	m.mu.Unlock()
	//
	if ok {
		m.hits.Inc()
		return e, nil
	}
	//
	m.misses.Inc()
	//
	e, err := maker.MakeTerm(t)
	if err != nil {
		return nil, err
	}
	//
	m.mu.Lock()
	defer m.mu.Unlock()
	// Only cache if the model did not change in the meantime
	if generation == m.generation {
		m.entries[key] = e
	}
	//
	return e, nil
}

// Invalidate discards every cached entry.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	//
	if len(m.entries) > 0 {
		log.Debugf("invalidating %d cached term tables", len(m.entries))
	}
	//
	m.entries = make(map[string]*Entry)
	m.generation++
	m.invalidations.Inc()
}

// Len returns the number of cached entries.
func (m *Manager) Len() uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	//
	return uint(len(m.entries))
}
