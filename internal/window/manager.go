// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package window

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/julekalender/internal/logger"
)

// session is one surface together with the launch that created it.
type session struct {
	seq     uint64
	id      string
	surface Surface
}

// Manager is the lifecycle owner of the visualization window:
// Closed -> Opening -> Ready -> Closed, with at most one surface at a time.
type Manager struct {
	pages   PageResolver
	names   NamesSource
	factory SurfaceFactory

	// launchMu serializes Launch from closing the previous surface until the
	// new session is installed, so two browsers never coexist.
	launchMu sync.Mutex

	mu      sync.Mutex
	state   State
	current *session
	seq     uint64
	closed  bool

	wg sync.WaitGroup

	logger *logger.Logger
}

func NewManager(pages PageResolver, names NamesSource, factory SurfaceFactory, logger *logger.Logger) *Manager {
	return &Manager{
		pages:   pages,
		names:   names,
		factory: factory,
		state:   StateClosed,
		logger:  logger.WithComponent("window"),
	}
}

// Launch replaces the current surface with a new one showing visualization
// id. An id that does not resolve is logged and otherwise ignored. Loading
// and name injection continue in the background after Launch returns.
func (m *Manager) Launch(ctx context.Context, id string) error {
	m.launchMu.Lock()
	defer m.launchMu.Unlock()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrManagerClosed
	}
	m.closeCurrentLocked()
	m.mu.Unlock()

	page, err := m.pages.EntryPage(ctx, id)
	if err != nil {
		m.logger.Warn().Err(err).Str("visualization", id).Msg("visualization does not resolve, not launching")
		return nil
	}

	// the window outlives the request that opened it
	bg := context.WithoutCancel(ctx)

	surface, err := m.factory.NewSurface(bg)
	if err != nil {
		m.logger.Err(err).Str("visualization", id).Msg("opening surface failed")
		return fmt.Errorf("%w: %w", ErrOpenSurface, err)
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		_ = surface.Close()
		return ErrManagerClosed
	}
	m.seq++
	s := &session{seq: m.seq, id: id, surface: surface}
	m.current = s
	m.state = StateOpening
	m.wg.Add(2)
	m.mu.Unlock()

	go m.load(bg, s, FileURL(page))
	go m.watch(s)

	m.logger.Info().Str("visualization", id).Uint64("session", s.seq).Msg("visualization window opening")
	return nil
}

// load waits for the page and injects the names enabled at that moment.
// A load that completes after its surface was replaced is dropped.
func (m *Manager) load(ctx context.Context, s *session, pageURL string) {
	defer m.wg.Done()

	if err := s.surface.Load(ctx, pageURL); err != nil {
		if m.isCurrent(s) {
			m.logger.Err(err).Str("visualization", s.id).Msg("loading visualization failed")
		}
		m.release(s)
		_ = s.surface.Close()
		return
	}

	if !m.isCurrent(s) {
		m.logger.Debug().Uint64("session", s.seq).Msg("stale load discarded")
		return
	}

	names := m.names.ListEnabledNames(ctx)
	if err := s.surface.Inject(ctx, names); err != nil {
		m.logger.Err(err).Str("visualization", s.id).Msg("injecting names failed, closing window")
		m.release(s)
		_ = s.surface.Close()
		return
	}

	m.mu.Lock()
	if m.current == s {
		m.state = StateReady
	}
	m.mu.Unlock()

	m.logger.Info().Str("visualization", s.id).Int("names", len(names)).Msg("visualization ready")
}

// watch clears the reference once the surface goes away.
func (m *Manager) watch(s *session) {
	defer m.wg.Done()

	<-s.surface.Done()
	if m.release(s) {
		m.logger.Info().Str("visualization", s.id).Msg("visualization window closed")
	}
}

// release forgets s if it is still current and reports whether it was.
func (m *Manager) release(s *session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != s {
		return false
	}
	m.current = nil
	m.state = StateClosed
	return true
}

func (m *Manager) isCurrent(s *session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current == s
}

func (m *Manager) closeCurrentLocked() {
	if m.current == nil {
		return
	}

	prev := m.current
	m.current = nil
	m.state = StateClosed

	if err := prev.surface.Close(); err != nil {
		m.logger.Warn().Err(err).Str("visualization", prev.id).Msg("closing previous surface failed")
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Current returns the id of the open visualization, if any.
func (m *Manager) Current() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return "", false
	}
	return m.current.id, true
}

// Close shuts the open surface and waits for background work to finish.
// Launch fails afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	m.closed = true
	m.closeCurrentLocked()
	m.mu.Unlock()

	m.wg.Wait()
	return nil
}

// FileURL turns an absolute path into a file:// URL.
func FileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
