// Package ctl implements the shadowmapctl commands.
package ctl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amp-labs/shadowmap/cli"
	"github.com/amp-labs/shadowmap/config"
	"github.com/amp-labs/shadowmap/hashing"
	"github.com/amp-labs/shadowmap/logger"
	"github.com/amp-labs/shadowmap/persist"
	"github.com/amp-labs/shadowmap/persist/redisstore"
	"github.com/amp-labs/shadowmap/shadowmap"
	"github.com/jessevdk/go-flags"
	"github.com/redis/go-redis/v9"
)

const subsystem = "shadowmapctl"

// document is the file layout every command reads and writes.
type document struct {
	Entries shadowmap.StringAnyMap `bson:"entries" json:"entries" msgpack:"entries" yaml:"entries"`
}

// newDocument returns an empty document whose keys use the configured hash.
func (a *app) newDocument() *document {
	entries := shadowmap.New[hashing.HashableString, any](shadowmap.WithHashFunc(a.cfg.HashOrDefault()))

	return &document{Entries: *entries}
}

// RedisDialer opens a redis client for addr.
type RedisDialer func(addr string) redisstore.Client

// app is the state of one invocation.
type app struct {
	opts    *Options
	stdout  io.Writer
	stderr  io.Writer
	confirm cli.Confirmer
	dial    RedisDialer

	ctx context.Context //nolint:containedctx
	cfg *config.Config
}

// Option adjusts how Run talks to the outside world.
type Option func(*app)

// WithOutput redirects command output and logs.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *app) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithConfirmer replaces the terminal prompt used before overwriting files.
func WithConfirmer(confirm cli.Confirmer) Option {
	return func(a *app) {
		a.confirm = confirm
	}
}

// WithRedisDialer replaces the redis connection used by push and pull.
func WithRedisDialer(dial RedisDialer) Option {
	return func(a *app) {
		a.dial = dial
	}
}

func dialRedis(addr string) redisstore.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// Run parses args and executes the selected command.
func Run(ctx context.Context, args []string, opts ...Option) error {
	a := &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		confirm: cli.PromptConfirm,
		dial:    dialRedis,
		ctx:     ctx,
	}

	for _, opt := range opts {
		opt(a)
	}

	options := &Options{}
	options.Init(a)

	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(a.stdout, flagsErr.Message)

			return nil
		}

		return err
	}

	return nil
}

// setup loads configuration and logging. Commands call it first in Execute,
// after go-flags has filled in the global options.
func (a *app) setup() error {
	cfg, err := config.Load(a.opts.Config)
	if err != nil {
		return err
	}

	a.cfg = cfg

	opts := cfg.LoggingOptions(subsystem)
	opts.Output = a.stderr

	log := logger.ConfigureLoggingWithOptions(opts)
	a.ctx = logger.WithLogger(a.ctx, log)

	return nil
}

// codecFor resolves an explicit codec name, then the extension of path, then
// the configured default.
func (a *app) codecFor(name, path string) (persist.Codec, error) {
	if name != "" {
		return persist.Lookup(name)
	}

	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if codec, err := persist.Lookup(ext); err == nil {
			return codec, nil
		}
	}

	return a.cfg.CodecOrDefault(), nil
}

func (a *app) readDocument(path string, codec persist.Codec) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc := a.newDocument()

	if err := persist.Load(a.ctx, codec, data, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return doc, nil
}

// writeOutput sends data to stdout when path is empty. An existing file is
// only replaced with force or after the user agrees.
func (a *app) writeOutput(path string, data []byte, force bool) error {
	if path == "" {
		_, err := a.stdout.Write(data)

		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		ok, err := cli.ConfirmOverwrite(a.confirm, path)
		if err != nil {
			return err
		}

		if !ok {
			logger.Get(a.ctx).Info("output kept", "path", path)

			return nil
		}
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}
