package ctl

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/amp-labs/shadowmap/logger"
	"github.com/amp-labs/shadowmap/persist"
	"github.com/amp-labs/shadowmap/persist/redisstore"
)

var (
	// ErrNoRedis is returned when no redis address is configured.
	ErrNoRedis = errors.New("no redis address configured")
	// ErrSlotNotFound is returned by pull for a slot that does not exist.
	ErrSlotNotFound = errors.New("slot not found")
)

type PushCmd struct {
	Codec string        `short:"c" long:"codec" description:"codec of the input (default: from the file extension)"`
	Slot  string        `short:"s" long:"slot"  description:"slot name (default: a new random slot)"`
	TTL   time.Duration `long:"ttl" description:"expire the slot after this long"`
	Args  fileArg       `positional-args:"yes" required:"yes"`

	app *app
}

func (c *PushCmd) Execute(_ []string) error {
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

	slot := c.Slot
	if slot == "" {
		slot = redisstore.NewSlot()
	}

	err = c.app.withStore(func(store *redisstore.Store) error {
		return store.Save(c.app.ctx, slot, doc)
	}, redisstore.WithTTL(c.TTL))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.app.stdout, slot)

	return err
}

type PullCmd struct {
	To     string `long:"to" description:"codec of the output (default: from --output, then config)"`
	Output string `short:"o" long:"output" description:"output path (default: stdout)"`
	Force  bool   `long:"force" description:"overwrite the output without asking"`
	Args   struct {
		Slot string `positional-arg-name:"slot" description:"slot to fetch"`
	} `positional-args:"yes" required:"yes"`

	app *app
}

func (c *PullCmd) Execute(_ []string) error {
	if err := c.app.setup(); err != nil {
		return err
	}

	to, err := c.app.codecFor(c.To, c.Output)
	if err != nil {
		return err
	}

	doc := c.app.newDocument()

	err = c.app.withStore(func(store *redisstore.Store) error {
		found, err := store.Load(c.app.ctx, c.Args.Slot, doc)
		if err != nil {
			return err
		}

		if !found {
			return fmt.Errorf("%w: %s", ErrSlotNotFound, store.Key(c.Args.Slot))
		}

		return nil
	})
	if err != nil {
		return err
	}

	data, err := persist.Save(c.app.ctx, to, doc)
	if err != nil {
		return err
	}

	return c.app.writeOutput(c.Output, data, c.Force)
}

// withStore connects to the configured redis for the duration of fn.
func (a *app) withStore(fn func(*redisstore.Store) error, opts ...redisstore.Option) error {
	if a.cfg.Redis.Addr == "" {
		return ErrNoRedis
	}

	client := a.dial(a.cfg.Redis.Addr)
	if closer, ok := client.(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Get(a.ctx).Warn("closing redis client", "error", err)
			}
		}()
	}

	base := []redisstore.Option{redisstore.WithCodec(a.cfg.CodecOrDefault())}
	if a.cfg.Redis.Prefix != "" {
		base = append(base, redisstore.WithPrefix(a.cfg.Redis.Prefix))
	}

	opts = append(base, opts...)

	return fn(redisstore.New(client, opts...))
}
