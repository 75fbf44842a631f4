package main

/*------------------------------------------------------------------
 *
 * Purpose:	YAML configuration file loading for crcsum --config.
 *
 *		Lets a caller name a CRC configuration once in a file
 *		instead of repeating --width/--poly/... on every
 *		invocation, using gopkg.in/yaml.v3, a direct dependency
 *		in this module's go.mod.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/doismellburning/crcbox/internal/crc"
)

// fileConfig mirrors the fields a user can set on the command line. When
// --config is given, the file alone decides the configuration and method;
// the configuration flags are not consulted and are not merged with it.
type fileConfig struct {
	Template string  `yaml:"template"`
	Width    uint    `yaml:"width"`
	Poly     uint64  `yaml:"poly"`
	Init     uint64  `yaml:"init"`
	RefIn    bool    `yaml:"refin"`
	RefOut   bool    `yaml:"refout"`
	XorOut   uint64  `yaml:"xorout"`
	Method   *string `yaml:"method"`
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return fc, nil
}

func (fc fileConfig) resolve() (crc.Configuration, error) {
	if fc.Template != "" {
		return crc.Lookup(fc.Template)
	}
	return crc.NewConfiguration(fc.Width, fc.Poly, fc.Init, fc.RefIn, fc.RefOut, fc.XorOut)
}
