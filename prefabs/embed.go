package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is where Load looks for on-disk overrides of the embedded prefabs, so
// tunables can be edited without a rebuild.
var Dir = "prefabs"

// Load returns the raw bytes of a prefab. The "prefabs/" prefix and the .yaml
// extension are both optional.
func Load(name string) ([]byte, error) {
	clean := prefabFile(name)
	if clean == "" {
		return nil, errors.New("prefabs: empty name")
	}
	data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean)))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("prefabs: read %s: %w", clean, err)
	}
	return PrefabsFS.ReadFile(clean)
}

func prefabFile(name string) string {
	if name == "" {
		return ""
	}
	s := strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
	if path.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}
