package ctl

import (
	"github.com/amp-labs/shadowmap/logger"
	"github.com/amp-labs/shadowmap/persist"
)

type ConvertCmd struct {
	From   string  `long:"from"   description:"codec of the input (default: from the file extension)"`
	To     string  `long:"to"     description:"codec of the output (default: from --output, then config)"`
	Output string  `short:"o" long:"output" description:"output path (default: stdout)"`
	Force  bool    `long:"force"  description:"overwrite the output without asking"`
	Args   fileArg `positional-args:"yes" required:"yes"`

	app *app
}

func (c *ConvertCmd) Execute(_ []string) error {
	if err := c.app.setup(); err != nil {
		return err
	}

	from, err := c.app.codecFor(c.From, c.Args.File)
	if err != nil {
		return err
	}

	to, err := c.app.codecFor(c.To, c.Output)
	if err != nil {
		return err
	}

	doc, err := c.app.readDocument(c.Args.File, from)
	if err != nil {
		return err
	}

	data, err := persist.Save(c.app.ctx, to, doc)
	if err != nil {
		return err
	}

	logger.Get(c.app.ctx).Debug("converted",
		"file", c.Args.File, "from", from.Name(), "to", to.Name(), "entries", doc.Entries.Len())

	return c.app.writeOutput(c.Output, data, c.Force)
}
