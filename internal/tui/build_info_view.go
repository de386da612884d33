// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/julekalender/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, host *models.VersionResponse, hostErr string) string {
	var b strings.Builder

	b.WriteString("Program: Julekalender\n")
	b.WriteString("Versjon: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Dato: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n\n")

	b.WriteString("Vert: ")
	switch {
	case hostErr != "":
		b.WriteString(hostErr)
	case host == nil:
		b.WriteString("...")
	default:
		b.WriteString(valueOrNA(host.Version))
		b.WriteString(" (")
		b.WriteString(valueOrNA(host.BuildVersion))
		b.WriteString(", ")
		b.WriteString(valueOrNA(host.BuildCommit))
		b.WriteString(")")
	}

	return renderPage(titleStyle.Render("OM PROGRAMMET"), b.String(), "esc: tilbake")
}
