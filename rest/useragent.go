package rest

import (
	"fmt"
	"runtime"
	"strings"
)

// Version is the library version reported in the user agent.
const Version = "1.0.0"

// LibraryName identifies this client library in the user agent.
const LibraryName = "nexmo-go"

// FormatUserAgent builds a user-agent string of the form
// "LIBRARY-NAME/LIBRARY-VERSION LANGUAGE-NAME/LANGUAGE-VERSION", with an
// optional " APP-NAME/APP-VERSION" suffix. An unknown language version is
// reported as "-". An app name without a version is appended bare.
func FormatUserAgent(libName, libVersion, langName, langVersion, appName, appVersion string) string {
	if langVersion == "" {
		langVersion = "-"
	}

	ua := fmt.Sprintf("%s/%s %s/%s", libName, libVersion, langName, langVersion)

	if appName != "" {
		if appVersion != "" {
			ua += fmt.Sprintf(" %s/%s", appName, appVersion)
		} else {
			ua += " " + appName
		}
	}

	return ua
}

// defaultUserAgent returns the user agent for this library and the running
// Go toolchain, e.g. "nexmo-go/1.0.0 go/1.24.4".
func defaultUserAgent(appName, appVersion string) string {
	return FormatUserAgent(LibraryName, Version, "go", goVersion(), appName, appVersion)
}

// goVersion extracts the bare toolchain version from runtime.Version.
// Development toolchains ("devel +abc123") report an unknown version.
func goVersion() string {
	v := runtime.Version()
	if !strings.HasPrefix(v, "go") {
		return ""
	}
	return strings.TrimPrefix(v, "go")
}
