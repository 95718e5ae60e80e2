// Package persist is a small field-list persistence framework. It encodes
// plain structs with a Codec and drives the two synchronization hooks of
// every shadow map (or any other Hooks implementer) found inside them.
//
// Save calls PrepareForPersistence on each implementer before encoding;
// Load decodes and then calls RestoreFromPersistence on each implementer.
// The framework owns the timing; implementers never call back into it.
package persist

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amp-labs/shadowmap/errors"
	"github.com/amp-labs/shadowmap/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Hooks is the capability a value exposes to be synchronized around
// encoding. Implementations must use pointer receivers.
type Hooks interface {
	// PrepareForPersistence is called immediately before the value's fields are encoded.
	PrepareForPersistence() error
	// RestoreFromPersistence is called immediately after the value's fields were decoded.
	RestoreFromPersistence() error
}

// Save prepares every Hooks implementer reachable from obj and encodes obj
// with codec. obj should be a pointer; values passed by value cannot have
// their hooks run.
func Save(ctx context.Context, codec Codec, obj any) (data []byte, err error) {
	ctx, span := startSpan(ctx, "persist.save", codec)
	defer func() { endSpan(span, err) }()

	hooks, err := walk(obj, preOrder, Hooks.PrepareForPersistence)
	recordHooks("prepare", hooks)

	if err != nil {
		recordOperation("save", codec, err)

		return nil, fmt.Errorf("%w: %w", errors.ErrHookFailed, err)
	}

	data, err = codec.Marshal(obj)
	recordOperation("save", codec, err)

	if err != nil {
		return nil, fmt.Errorf("encoding %T as %s: %w", obj, codec.Name(), err)
	}

	span.SetAttributes(attribute.Int("persist.bytes", len(data)), attribute.Int("persist.hooks", hooks))
	logger.Get(ctx).Debug("saved object",
		"codec", codec.Name(), "type", fmt.Sprintf("%T", obj), "bytes", len(data), "hooks", hooks)

	return data, nil
}

// Load decodes data into obj, which must be a non-nil pointer, and then
// restores every Hooks implementer reachable from it.
func Load(ctx context.Context, codec Codec, data []byte, obj any) (err error) {
	ctx, span := startSpan(ctx, "persist.load", codec)
	defer func() { endSpan(span, err) }()

	rv := reflect.ValueOf(obj)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		recordOperation("load", codec, errors.ErrNotPointer)

		return fmt.Errorf("%w: got %T", errors.ErrNotPointer, obj)
	}

	if err = codec.Unmarshal(data, obj); err != nil {
		recordOperation("load", codec, err)

		return fmt.Errorf("decoding %T from %s: %w", obj, codec.Name(), err)
	}

	hooks, err := walk(obj, postOrder, Hooks.RestoreFromPersistence)
	recordHooks("restore", hooks)
	recordOperation("load", codec, err)

	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrHookFailed, err)
	}

	span.SetAttributes(attribute.Int("persist.bytes", len(data)), attribute.Int("persist.hooks", hooks))
	logger.Get(ctx).Debug("loaded object",
		"codec", codec.Name(), "type", fmt.Sprintf("%T", obj), "bytes", len(data), "hooks", hooks)

	return nil
}

// startSpan uses the global tracer; it is a no-op unless the host binary
// installs a tracer provider.
//
//nolint:spancheck // ended by the caller
func startSpan(ctx context.Context, name string, codec Codec) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := otel.Tracer("github.com/amp-labs/shadowmap/persist").Start(ctx, name)
	span.SetAttributes(attribute.String("persist.codec", codec.Name()))

	return ctx, span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.End()
}
