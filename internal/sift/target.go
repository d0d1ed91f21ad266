package sift

import (
	"path/filepath"
	"strings"
)

// OutputPath derives the artifact path for a matched stream by replacing the
// source extension with "<qualifier>.<ext>". The function is deterministic:
// the same inputs always name the same artifact, which is what makes re-runs
// cheap to skip.
func OutputPath(source, qualifier, ext string) string {
	stem := strings.TrimSuffix(source, filepath.Ext(source))
	return stem + "." + qualifier + "." + strings.TrimPrefix(ext, ".")
}
