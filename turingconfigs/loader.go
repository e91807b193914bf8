package turingconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"turing.cue",
	".turing.cue",
}

// ConfigPaths lists existing config files, most specific first.
func ConfigPaths() (paths []string) {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := ConfigPaths()
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return configs.NewLoader(paths, schema)
}
