package cfg

import (
	"path/filepath"
	"sync"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/anaypant119/har2openapi/printer"
)

var (
	cfgDir     string
	cfgDirOnce sync.Once
)

func initCfgDir() {
	home, err := homedir.Dir()
	if err != nil {
		printer.Stderr.Warningf("Failed to find $HOME, defaulting to '.', error: %v\n", err)
		home = "."
	}
	cfgDir = filepath.Join(home, ".har2openapi")
}

// GetCfgDir returns the per-user configuration directory.
func GetCfgDir() string {
	cfgDirOnce.Do(initCfgDir)
	return cfgDir
}

// GetDefaultConfigPath is where the pipeline configuration is looked up when
// --config is not given.
func GetDefaultConfigPath() string {
	return filepath.Join(GetCfgDir(), "config.yaml")
}
