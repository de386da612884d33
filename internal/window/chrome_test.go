package window

import (
	"strings"
	"testing"

	"github.com/MKhiriev/julekalender/internal/config"
	"github.com/MKhiriev/julekalender/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectionScript(t *testing.T) {
	script, err := InjectionScript([]string{"Alice", "</script><b>Bob</b>"})
	require.NoError(t, err)

	assert.Contains(t, script, `window.JULEKALENDER_NAMES = names;`)
	assert.Contains(t, script, `new CustomEvent("julekalender-names-loaded", { detail: { names: names } })`)
	assert.Contains(t, script, `"Alice"`)
	// markup in names is escaped by the JSON encoder
	assert.NotContains(t, script, "</script>")
	assert.Contains(t, script, `\u003c/script\u003e`)
}

func TestInjectionScript_NilNamesBecomeEmptyArray(t *testing.T) {
	script, err := InjectionScript(nil)
	require.NoError(t, err)

	assert.Contains(t, script, "var names = [];")
}

func TestEscapeListenerScript(t *testing.T) {
	assert.True(t, strings.Contains(escapeListenerScript, "'Escape'"))
	assert.Contains(t, escapeListenerScript, "window.launcherClose('escape')")
}

func TestChromeFactory_AllocatorOptions(t *testing.T) {
	fullscreen := NewChromeFactory(config.Window{}, logger.Nop())
	windowed := NewChromeFactory(config.Window{Windowed: true, BrowserPath: "/usr/bin/chromium"}, logger.Nop())

	// the browser path adds one option
	assert.Len(t, windowed.allocatorOptions(), len(fullscreen.allocatorOptions())+1)
}
