package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/example/snipshot/internal/config"
)

type configCmd struct {
	*root
	fs      *flag.FlagSet
	program string
}

func (c *configCmd) Program() string        { return c.program }
func (c *configCmd) FlagSet() *flag.FlagSet { return c.fs }

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c := &configCmd{root: r, fs: fs, program: r.subcommand("config")}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, &UsageError{of: c}
		}
		return nil, &UsageError{of: c, err: err}
	}
	return c, nil
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: c, err: errors.New("missing config command")}
	}

	switch args[0] {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	default:
		return &UsageError{of: c, err: fmt.Errorf("unknown config command: %s", args[0])}
	}
}

func (c *configCmd) runPrint() error {
	_, err := io.WriteString(c.root.stdout, c.root.config.String())
	return err
}

// runSave writes to the file the config was read from, or to the default
// location when there was none.
func (c *configCmd) runSave() error {
	loader := config.NewLoader(version, c.root.configPath)
	path := loader.GetConfigPath()
	if path == "" {
		path = loader.DefaultPath()
	}
	if err := c.root.config.Save(path); err != nil {
		return err
	}
	log.Printf("configuration saved to %s", path)
	fmt.Fprintln(c.root.stdout, path)
	return nil
}
