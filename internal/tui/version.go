package tui

import "github.com/akyairhashvil/countdown/internal/version"

func versionLabel() string {
	return "v" + version.Short()
}
