// Package battlev1 defines the battle.v1.BattleService gRPC contract: request and response
// messages, the service descriptor, and a client. Messages travel as JSON through a codec
// registered under the "json" content subtype.
package battlev1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content subtype the service is served with
const CodecName = "json"

// Codec marshals messages as JSON
type Codec struct{}

var _ encoding.Codec = Codec{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("battlev1: marshal %T: %w", v, err)
	}
	return data, nil
}

// Unmarshal decodes JSON into v
func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("battlev1: unmarshal %T: %w", v, err)
	}
	return nil
}

// Name returns CodecName
func (Codec) Name() string {
	return CodecName
}
