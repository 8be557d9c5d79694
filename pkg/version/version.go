package version

// version is set at build time via ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/docsmith/pkg/version.version=1.0.0'"
var version = "dev"

// Get returns the build version string.
func Get() string {
	return version
}
