package config

import "strings"

// Config is the behaviour configuration loaded from
// ~/.tyrepage/config.yaml (or --config). Product-copy decisions live in
// the separate copy rules file, see copy.go.
type Config struct {
	Output         OutputConfig         `yaml:"output"`
	StructuredData StructuredDataConfig `yaml:"structured_data"`
	CopyFile       string               `yaml:"copy_file"`
	Concurrency    int                  `yaml:"concurrency"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
	Zip bool   `yaml:"zip"`
}

// StructuredDataConfig toggles JSON-LD exports. Product and FAQ are per
// size; LocalBusiness is written once per batch.
type StructuredDataConfig struct {
	Product       bool `yaml:"product"`
	FAQ           bool `yaml:"faq"`
	LocalBusiness bool `yaml:"local_business"`
}

type Paths struct {
	HomeDir          string
	RootDir          string
	ConfigPath       string
	CopyPath         string
	ConfigSource     string
	ResolvedCopyPath string
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = "."
	}
	if strings.TrimSpace(c.CopyFile) == "" {
		c.CopyFile = "~/.tyrepage/copy.yaml"
	}
	if c.Concurrency < 0 {
		c.Concurrency = 0
	}
}
