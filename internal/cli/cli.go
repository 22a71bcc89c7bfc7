package cli

import (
	"os"
	"path/filepath"

	"github.com/mlenz/regionmap/pkg/errors"
	"github.com/mlenz/regionmap/pkg/mapdef"
)

// appName is the application name used for directories and display.
const appName = "regionmap"

// loadDef reads and validates a map definition from the --map flag value.
func loadDef(path string) (*mapdef.Def, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing --map")
	}
	if err := errors.ValidateMapPath(path); err != nil {
		return nil, err
	}
	return mapdef.ReadFile(path)
}

// stateDir returns the named-state directory using the XDG standard
// (~/.config/regionmap/states/).
func stateDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "states"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "states"), nil
}
