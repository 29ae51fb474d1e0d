//go:build windows

package platform

import (
	"path/filepath"
	"strings"
)

// projectPath nests the application under its organization, as Windows
// applications conventionally do inside %LOCALAPPDATA%.
func projectPath(id Identity) string {
	app := strings.TrimSpace(id.Application)
	if app == "" {
		return ""
	}
	if org := strings.TrimSpace(id.Organization); org != "" {
		return filepath.Join(org, app)
	}
	return app
}
