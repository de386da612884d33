// Package window owns the visualization host window.
//
// A [Manager] keeps at most one [Surface] open. Launching a visualization
// closes the current surface first, opens a new one on the entry page and,
// once the page has loaded, hands the enabled participant names to it. The
// production surface is a Chrome window driven over the DevTools protocol
// with chromedp.
package window
