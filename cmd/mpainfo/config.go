// SPDX-License-Identifier: EPL-2.0

package main

import "flag"

const defaultHeaderCount = 50

// Config controls which file is inspected and how much of it is printed.
// Values can come from flags or from a YAML file given with -config.file;
// flags win.
type Config struct {
	File    string `yaml:"file,omitempty"`
	Headers int    `yaml:"headers,omitempty"`
	All     bool   `yaml:"all,omitempty"`
}

func (c *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.StringVar(&c.File, prefix+"file", "", "The MPEG audio file to inspect")
	f.IntVar(&c.Headers, prefix+"headers", defaultHeaderCount, "How many frame headers to print")
	f.BoolVar(&c.All, prefix+"all", true, "Also print headers whose version or layer differ from the first header")
}
