// Package version reports the CLI's build identity; release and git
// versions are stamped at link time.
package version

import (
	"fmt"
	"runtime"
	"strings"

	ver "github.com/hashicorp/go-version"
)

var (
	// Overridden at link-time with -X flag.
	rawReleaseVersion = "0.0.0"
	gitVersion        = "unknown"

	releaseVersion = ver.Must(ver.NewSemver(strings.TrimSpace(rawReleaseVersion)))
)

func ReleaseVersion() *ver.Version {
	return releaseVersion
}

// GitVersion returns the git SHA this binary was built from.
func GitVersion() string {
	return gitVersion
}

func CLIDisplayString() string {
	return fmt.Sprintf("%s (%s, %s/%s)", releaseVersion, gitVersion, runtime.GOOS, runtime.GOARCH)
}
