package window

import "context"

// Surface is one open visualization display.
type Surface interface {
	// Load opens url and blocks until the page has finished loading.
	Load(ctx context.Context, url string) error

	// Inject publishes names to the loaded page and raises the readiness
	// event carrying them.
	Inject(ctx context.Context, names []string) error

	// Done is closed once the surface is gone: closed by the user, by the
	// escape key or by Close.
	Done() <-chan struct{}

	// Close is safe to call more than once.
	Close() error
}

// SurfaceFactory opens a new, not yet loaded, surface.
type SurfaceFactory interface {
	NewSurface(ctx context.Context) (Surface, error)
}

// SurfaceFactoryFunc adapts a function to [SurfaceFactory].
type SurfaceFactoryFunc func(ctx context.Context) (Surface, error)

func (f SurfaceFactoryFunc) NewSurface(ctx context.Context) (Surface, error) {
	return f(ctx)
}

// NamesSource yields the names to inject at load time.
type NamesSource interface {
	ListEnabledNames(ctx context.Context) []string
}

// PageResolver maps a visualization id to the absolute path of its entry
// page.
type PageResolver interface {
	EntryPage(ctx context.Context, id string) (string, error)
}
