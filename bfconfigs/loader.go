package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bfc/cmds"
	"github.com/reusee/bfc/configs"
	"github.com/reusee/bfc/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config")

// ConfigFilenames are looked up in the working directory, the user config
// directory and /etc, in that order of precedence.
var ConfigFilenames = []string{
	"bfc.cue",
	".bfc.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	// explicit files come first
	paths := append([]string(nil), *configFlag...)
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range ConfigFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
