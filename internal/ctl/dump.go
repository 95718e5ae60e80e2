package ctl

import (
	"fmt"

	"github.com/amp-labs/shadowmap/inspect"
)

type DumpCmd struct {
	Codec  string  `short:"c" long:"codec" description:"codec of the input (default: from the file extension)"`
	Format string  `long:"format" choice:"json" choice:"text" choice:"display" default:"json" description:"output format"`
	Sorted bool    `long:"sorted" description:"order entries by key in natural order"`
	Args   fileArg `positional-args:"yes" required:"yes"`

	app *app
}

func (c *DumpCmd) Execute(_ []string) error {
	if err := c.app.setup(); err != nil {
		return err
	}

	codec, err := c.app.codecFor(c.Codec, c.Args.File)
	if err != nil {
		return err
	}

	doc, err := c.app.readDocument(c.Args.File, codec)
	if err != nil {
		return err
	}

	if c.Format == "display" {
		_, err = fmt.Fprintln(c.app.stdout, doc.Entries.String())

		return err
	}

	fields := inspect.Fields(&doc.Entries)
	if c.Sorted {
		fields = inspect.SortedFields(&doc.Entries)
	}

	if c.Format == "text" {
		for _, field := range fields {
			if _, err := fmt.Fprintf(c.app.stdout, "%s\t%v\n", field.Name, field.Value); err != nil {
				return err
			}
		}

		return nil
	}

	return inspect.Dump(c.app.stdout, fields)
}
