// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package window

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/inspector"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
)

const (
	// NamesGlobal is the window property holding the injected names.
	NamesGlobal = "JULEKALENDER_NAMES"

	// NamesLoadedEvent is dispatched on window right after injection with
	// detail {names}.
	NamesLoadedEvent = "julekalender-names-loaded"

	// closeBinding is the page function that asks the host to close the
	// window.
	closeBinding = "launcherClose"
)

// escapeListenerScript runs in every new document before its own scripts.
var escapeListenerScript = fmt.Sprintf(`window.addEventListener('keydown', function (e) {
  if (e.key === 'Escape' && typeof window.%[1]s === 'function') {
    window.%[1]s('escape');
  }
}, true);`, closeBinding)

// InjectionScript returns the script that publishes names to the page and
// raises [NamesLoadedEvent].
func InjectionScript(names []string) (string, error) {
	if names == nil {
		names = []string{}
	}

	payload, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("encode names: %w", err)
	}

	return fmt.Sprintf(`(function () {
  var names = %s;
  window.%s = names;
  window.dispatchEvent(new CustomEvent(%q, { detail: { names: names } }));
  return true;
})()`, payload, NamesGlobal, NamesLoadedEvent), nil
}

// ChromeFactory opens every surface in its own Chrome process.
type ChromeFactory struct {
	cfg    config.Window
	logger *logger.Logger
}

func NewChromeFactory(cfg config.Window, logger *logger.Logger) *ChromeFactory {
	return &ChromeFactory{cfg: cfg, logger: logger.WithComponent("chrome")}
}

func (f *ChromeFactory) allocatorOptions() []chromedp.ExecAllocatorOption {
	fullscreen := !f.cfg.Windowed

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("hide-scrollbars", false),
		chromedp.Flag("mute-audio", false),
		chromedp.Flag("kiosk", fullscreen),
		chromedp.Flag("start-fullscreen", fullscreen),
		chromedp.Flag("allow-file-access-from-files", true),
		chromedp.Flag("autoplay-policy", "no-user-gesture-required"),
	)
	if f.cfg.BrowserPath != "" {
		opts = append(opts, chromedp.ExecPath(f.cfg.BrowserPath))
	}
	return opts
}

// NewSurface starts the browser and installs the escape handler. The page
// stays blank until Load.
func (f *ChromeFactory) NewSurface(ctx context.Context) (Surface, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, f.allocatorOptions()...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(f.logger.Printf),
		chromedp.WithErrorf(func(format string, args ...any) {
			f.logger.Error().Msgf(format, args...)
		}),
	)

	s := &chromeSurface{
		ctx:         tabCtx,
		cancel:      tabCancel,
		allocCancel: allocCancel,
		done:        make(chan struct{}),
		logger:      f.logger,
	}

	chromedp.ListenTarget(tabCtx, s.onEvent)

	err := chromedp.Run(tabCtx,
		runtime.AddBinding(closeBinding),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(escapeListenerScript).Do(ctx)
			return err
		}),
	)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	go func() {
		<-tabCtx.Done()
		s.markDone()
	}()

	return s, nil
}

type chromeSurface struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	done      chan struct{}
	doneOnce  sync.Once
	closeOnce sync.Once

	logger *logger.Logger
}

// Load navigates and waits for the load event.
func (s *chromeSurface) Load(ctx context.Context, url string) error {
	if err := chromedp.Run(s.ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (s *chromeSurface) Inject(ctx context.Context, names []string) error {
	script, err := InjectionScript(names)
	if err != nil {
		return err
	}

	var ok bool
	if err = chromedp.Run(s.ctx, chromedp.Evaluate(script, &ok)); err != nil {
		return fmt.Errorf("inject names: %w", err)
	}
	return nil
}

func (s *chromeSurface) Done() <-chan struct{} {
	return s.done
}

func (s *chromeSurface) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = chromedp.Cancel(s.ctx)
		s.cancel()
		s.allocCancel()
		s.markDone()
	})
	return err
}

func (s *chromeSurface) markDone() {
	s.doneOnce.Do(func() { close(s.done) })
}

// onEvent runs on the chromedp event loop and must not block.
func (s *chromeSurface) onEvent(ev any) {
	switch e := ev.(type) {
	case *runtime.EventBindingCalled:
		if e.Name == closeBinding {
			s.logger.Debug().Str("reason", e.Payload).Msg("close requested by page")
			go func() { _ = s.Close() }()
		}
	case *inspector.EventDetached:
		s.logger.Debug().Str("reason", string(e.Reason)).Msg("window detached")
		go func() { _ = s.Close() }()
	}
}
