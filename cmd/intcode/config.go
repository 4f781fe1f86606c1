// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"flag"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// config holds the settings that can be read from a TOML file. Flags set on
// the command line override them.
type config struct {
	Program  string    `toml:"program"`
	Inputs   []vm.Word `toml:"inputs"`
	ASCII    bool      `toml:"ascii"`
	Assembly bool      `toml:"assembly"`
	Raw      bool      `toml:"raw"`
	Debug    bool      `toml:"debug"`
}

func defaultConfig() config {
	return config{
		Program: "input",
		Raw:     true,
	}
}

func loadConfig(fileName string) (config, error) {
	c := defaultConfig()
	md, err := toml.DecodeFile(fileName, &c)
	if err != nil {
		return c, errors.Wrapf(err, "config %s", fileName)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for k := range u {
			keys[k] = u[k].String()
		}
		return c, errors.Errorf("config %s: unknown keys: %s", fileName, strings.Join(keys, ", "))
	}
	return c, nil
}

type wordList []vm.Word

func (l *wordList) String() string {
	if l == nil {
		return ""
	}
	var b strings.Builder
	vm.Tape(*l).WriteTo(&b)
	return strings.TrimSuffix(b.String(), "\n")
}

func (l *wordList) Set(s string) error {
	t, err := vm.Parse(strings.NewReader(s))
	if err != nil {
		return err
	}
	*l = append(*l, t...)
	return nil
}

func (l *wordList) Get() interface{} { return []vm.Word(*l) }

type options struct {
	config
	configFile  string
	disasm      bool
	dump        bool
	outFileName string
}

func parseArgs(name string, args []string) (*options, error) {
	var (
		o      = options{config: defaultConfig()}
		inputs wordList
		fs     = flag.NewFlagSet(name, flag.ContinueOnError)
	)

	fs.StringVar(&o.configFile, "config", "", "load settings from TOML file `filename`")
	program := fs.String("program", o.Program, "load program from file `filename`")
	assembly := fs.Bool("asm", false, "the program file is assembly source")
	fs.Var(&inputs, "in", "comma separated `values` to push to the input queue (can be specified multiple times)")
	ascii := fs.Bool("ascii", false, "run in interactive ASCII mode")
	noRaw := fs.Bool("noraw", false, "disable raw terminal IO in ASCII mode")
	debug := fs.Bool("debug", false, "enable debug diagnostics")
	fs.BoolVar(&o.disasm, "disasm", false, "disassemble the program and exit")
	fs.BoolVar(&o.dump, "dump", false, "dump VM state upon exit")
	fs.StringVar(&o.outFileName, "o", "", "save final tape to `filename`")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	if o.configFile != "" {
		c, err := loadConfig(o.configFile)
		if err != nil {
			return nil, err
		}
		o.config = c
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "program":
			o.Program = *program
		case "asm":
			o.Assembly = *assembly
		case "in":
			o.Inputs = inputs
		case "ascii":
			o.ASCII = *ascii
		case "noraw":
			o.Raw = !*noRaw
		case "debug":
			o.Debug = *debug
		}
	})
	return &o, nil
}
