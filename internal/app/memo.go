package app

import (
	"sync"

	"gallicus_site/internal/domain"
)

// Memo is a render-pass cache: created when a public request comes in,
// discarded with it. It only dedupes resolver calls within one request;
// nothing survives across requests. Admin reads never get one.
type Memo struct {
	mu sync.Mutex

	beers     []domain.Beer
	locations []domain.Location
	content   map[string]string

	haveBeers     bool
	haveLocations bool
	haveContent   bool
}

func NewMemo() *Memo { return &Memo{} }

func (m *Memo) getBeers() ([]domain.Beer, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.beers, m.haveBeers
}

func (m *Memo) setBeers(rows []domain.Beer) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.beers, m.haveBeers = rows, true
}

func (m *Memo) getLocations() ([]domain.Location, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locations, m.haveLocations
}

func (m *Memo) setLocations(rows []domain.Location) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations, m.haveLocations = rows, true
}

func (m *Memo) getContent() (map[string]string, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content, m.haveContent
}

func (m *Memo) setContent(c map[string]string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content, m.haveContent = c, true
}
