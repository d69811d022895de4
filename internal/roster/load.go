package roster

import (
	"context"
	"os"

	"hullo.dev/hullo/internal/output"
)

// Source fetches figure names from a remote location. Implementations carry
// their own timeout so a slow source cannot stall roster loading.
type Source interface {
	Fetch(ctx context.Context) ([]string, error)
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Source is an optional remote source, tried first.
	Source Source
	// File is an optional local roster file, tried after the remote source.
	File string
	// Filter screens names from Source and File. Nil means DefaultFilter.
	Filter *Filter
	// Max caps the roster size. Zero means MaxNames.
	Max int
	// Splog records which source was used. Nil means a fresh console logger.
	Splog *output.Splog
}

// Load resolves the roster by falling through the configured sources:
// remote source, then local file, then the built-in defaults. Load never
// fails; an unusable source is logged and the next one is tried.
func Load(ctx context.Context, opts LoadOptions) *Roster {
	splog := opts.Splog
	if splog == nil {
		splog = output.NewSplog()
	}
	filter := opts.Filter
	if filter == nil {
		filter = DefaultFilter()
	}
	max := opts.Max
	if max <= 0 {
		max = MaxNames
	}

	if opts.Source != nil {
		names, err := opts.Source.Fetch(ctx)
		if err != nil {
			splog.Warn("Unable to fetch remote historical figures: %v", err)
		} else if valid := filter.apply(names); len(valid) > 0 {
			splog.Debug("loaded %d historical figures from remote source", len(valid))
			return New(truncate(valid, max))
		} else {
			splog.Warn("Remote figure source returned no usable names")
		}
	}

	if opts.File != "" {
		if _, err := os.Stat(opts.File); err == nil {
			names, err := LoadFile(opts.File)
			if err != nil {
				splog.Warn("Failed to read %s: %v", opts.File, err)
			} else if valid := filter.apply(names); len(valid) > 0 {
				splog.Debug("loaded %d historical figures from %s", len(valid), opts.File)
				return New(truncate(valid, max))
			}
		}
	}

	splog.Debug("using default historical figures list")
	return New(DefaultFigures())
}

func truncate(names []string, max int) []string {
	if len(names) > max {
		return names[:max]
	}
	return names
}
