package actions

import (
	"hullo.dev/hullo/internal/grid"
	"hullo.dev/hullo/internal/output"
)

// GridOptions are options for the grid summary command
type GridOptions struct {
	Path  string
	Splog *output.Splog
}

// GridAction loads a grid document and prints its element counts.
func GridAction(opts GridOptions) error {
	summary, err := grid.Load(opts.Path)
	if err != nil {
		return err
	}

	opts.Splog.Info("%s", summary)
	return nil
}
