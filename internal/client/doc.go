// Package client implements the launcher process runtime.
//
// It checks that the host answers, then hands the terminal over to the
// launcher UI until the user quits.
package client
