package parsetree

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"vhdlsema/internal/source"
)

// SchemaVersion changes whenever Node or Tag numbering changes.
const SchemaVersion uint16 = 1

type envelope struct {
	Schema uint16 `msgpack:"schema"`
	Root   *Node  `msgpack:"root"`
}

// Marshal encodes a tree as msgpack.
func Marshal(root *Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(&envelope{Schema: SchemaVersion, Root: root}); err != nil {
		return nil, fmt.Errorf("parsetree: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a tree produced by Marshal and rebinds every span to file,
// since FileIDs are only meaningful inside one FileSet.
func Unmarshal(data []byte, file source.FileID) (*Node, error) {
	var env envelope
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("parsetree: decode: %w", err)
	}
	if env.Schema != SchemaVersion {
		return nil, fmt.Errorf("parsetree: schema %d, want %d", env.Schema, SchemaVersion)
	}
	if env.Root == nil {
		return nil, fmt.Errorf("parsetree: empty tree")
	}
	Walk(env.Root, func(n *Node) bool {
		n.Span.File = file
		return true
	})
	return env.Root, nil
}
