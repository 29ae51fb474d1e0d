//go:build darwin

package platform

import "strings"

// projectPath builds the reverse-DNS bundle style name macOS uses under
// ~/Library: qualifier, organization and application joined with '.', each
// with whitespace replaced by '-' ("com.Foo-Corp.Bar-App").
func projectPath(id Identity) string {
	if dashed(id.Application) == "" {
		return ""
	}
	var parts []string
	for _, p := range []string{id.Qualifier, id.Organization, id.Application} {
		if p = dashed(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}
