package ctl

import (
	"errors"
	"fmt"
	"os"

	"github.com/amp-labs/shadowmap/inspect"
	"github.com/amp-labs/shadowmap/logger"
)

// ErrNotClean is returned by check when restoring would drop or merge entries.
var ErrNotClean = errors.New("shadow sequences would not restore cleanly")

type CheckCmd struct {
	Codec string  `short:"c" long:"codec" description:"codec of the input (default: from the file extension)"`
	Args  fileArg `positional-args:"yes" required:"yes"`

	app *app
}

func (c *CheckCmd) Execute(_ []string) error {
	if err := c.app.setup(); err != nil {
		return err
	}

	codec, err := c.app.codecFor(c.Codec, c.Args.File)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return err
	}

	// Decode without running hooks so the shadows are seen as stored.
	doc := c.app.newDocument()
	if err := codec.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("decode %s: %w", c.Args.File, err)
	}

	report, err := inspect.AuditMap(&doc.Entries)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(c.app.stdout, report.String()); err != nil {
		return err
	}

	if !report.Clean() {
		logger.Get(c.app.ctx).Warn("lossy shadows", "file", c.Args.File, "report", report.String())

		return fmt.Errorf("%w: %s", ErrNotClean, c.Args.File)
	}

	return nil
}
