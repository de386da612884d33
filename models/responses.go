package models

// VersionResponse is served by the host on GET /api/version. It is not one
// of the boundary operations: the launcher reads it once at start-up to
// check that the host is reachable.
type VersionResponse struct {
	// Version is the configured host version.
	Version string `json:"version"`

	// BuildVersion, BuildDate and BuildCommit come from [AppBuildInfo].
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// NewVersionResponse combines the configured version with build metadata.
func NewVersionResponse(version string, build AppBuildInfo) VersionResponse {
	return VersionResponse{
		Version:      version,
		BuildVersion: build.BuildVersion(),
		BuildDate:    build.BuildDate(),
		BuildCommit:  build.BuildCommit(),
	}
}

// ErrorResponse is the body of every non-2xx boundary response.
type ErrorResponse struct {
	// Error is a short, user-presentable message.
	Error string `json:"error"`
}
