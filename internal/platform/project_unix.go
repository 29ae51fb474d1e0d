//go:build !js && !darwin && !windows

package platform

// projectPath follows the XDG convention of a single lowercase directory
// named after the application: "Bar App" -> "barapp".
func projectPath(id Identity) string {
	return squash(id.Application)
}
