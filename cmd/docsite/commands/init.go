package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing files"`
	Output string `short:"o" name:"output" help:"Directory to write docsite.yaml, sidebars.yaml and features.yaml into"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	path := root.Config
	if i.Output != "" {
		path = filepath.Join(i.Output, config.DefaultFile)
	}
	fmt.Printf("Writing configuration to %s\n", path)
	return config.Init(path, i.Force)
}
