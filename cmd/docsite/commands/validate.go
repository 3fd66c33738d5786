package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	report, err := site.NewGenerator(cfg).Validate(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("OK: %d documents, %d sidebars, %d routes\n", report.Documents, report.Sidebars, report.Routes)
	return nil
}
