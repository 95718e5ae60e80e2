package persist

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amp-labs/shadowmap/errors"
	"github.com/bytedance/sonic"
	"github.com/vmihailenco/msgpack/v5"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

// Codec encodes and decodes whole objects field by field. None of the codecs
// know anything about shadow maps; they only see the Keys and Values fields.
type Codec interface {
	// Name returns the codec identifier used for lookup and diagnostics.
	Name() string
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

type msgpackCodec struct{}

func (msgpackCodec) Name() string { return "msgpack" }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// bsonCodec requires a document (struct or map) at the top level.
type bsonCodec struct{}

func (bsonCodec) Name() string { return "bson" }

func (bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

func (bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

var (
	// JSON encodes with sonic using encoding/json compatible settings.
	JSON Codec = jsonCodec{}
	// YAML encodes with gopkg.in/yaml.v3.
	YAML Codec = yamlCodec{}
	// MsgPack encodes with vmihailenco/msgpack.
	MsgPack Codec = msgpackCodec{}
	// BSON encodes with the mongo driver's bson package.
	BSON Codec = bsonCodec{}
)

var codecs = map[string]Codec{ //nolint:gochecknoglobals
	"json":    JSON,
	"yaml":    YAML,
	"yml":     YAML,
	"msgpack": MsgPack,
	"bson":    BSON,
}

// Lookup resolves a codec by name, case-insensitively.
func Lookup(name string) (Codec, error) {
	codec, ok := codecs[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCodec, name)
	}

	return codec, nil
}

// Names lists the names Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(codecs))

	for name := range codecs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
