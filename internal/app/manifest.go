// SPDX-License-Identifier: MPL-2.0

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"ghforge-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFileName is the optional project manifest beside the executable.
const ManifestFileName = "ghproject.toml"

// Manifest describes the plugin project layout. Every field is optional in
// the file; unset fields fall back to the compiled-in defaults, which match
// the canonical tapir repository layout.
type Manifest struct {
	// NamePrefix is the artifact base name; the build timestamp and
	// extension are appended to it.
	NamePrefix string `toml:"name_prefix"`

	// SourceFolder is the plugin source tree, relative to the base directory.
	SourceFolder string `toml:"source_folder"`

	// SharedPackageSource is the shared package staged into the build tree
	// before compilation.
	SharedPackageSource string `toml:"shared_package_source"`

	// SharedPackageTarget is where the shared package gets staged, inside
	// the plugin source tree.
	SharedPackageTarget string `toml:"shared_package_target"`

	// ArtifactExt is the artifact file extension, dot included.
	ArtifactExt string `toml:"artifact_ext"`
}

// DefaultManifest returns the built-in project layout.
func DefaultManifest() Manifest {
	return Manifest{
		NamePrefix:          "tapir_gh",
		SourceFolder:        "src",
		SharedPackageSource: filepath.Join("..", "python-package", "src", "tapir_py"),
		SharedPackageTarget: filepath.Join("src", "tapir_py"),
		ArtifactExt:         ".ghpy",
	}
}

// LoadManifest reads ghproject.toml from baseDir. A missing file yields the
// defaults; a present-but-malformed file is a fatal configuration error.
func LoadManifest(baseDir string) (Manifest, error) {
	m := DefaultManifest()

	path := filepath.Join(baseDir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return Manifest{}, fmt.Errorf("failed to read project manifest: %w", err)
	}

	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, issue.NewErrorContext().
			WithOperation("parse project manifest").
			WithResource(path).
			WithSuggestion("Check the TOML syntax").
			WithSuggestion("Remove the file to fall back to the default layout").
			Wrap(err).
			BuildError()
	}
	return m, nil
}
