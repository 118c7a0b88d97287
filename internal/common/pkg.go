package common

import "path"

// PkgAlias returns the default name a package path is referred to by: its
// last element. The empty path has no alias.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
