// Package boutiquev1 содержит gRPC API сервиса заказов бутика, сгенерированный из
// order_service.proto, и JSON-кодек поверх protojson для клиентов без protobuf.
package boutiquev1

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative boutique/v1/order_service.proto

// Codec — content-subtype, под которым API принимает сообщения в JSON
// (grpc.CallContentSubtype(Codec) на клиенте).
const Codec = "json"

var (
	jsonMarshal   = protojson.MarshalOptions{EmitUnpopulated: true}
	jsonUnmarshal = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// MarshalJSON кодирует сообщение в JSON так же, как это делает gRPC-кодек.
func MarshalJSON(msg proto.Message) ([]byte, error) {
	return jsonMarshal.Marshal(msg)
}

// UnmarshalJSON декодирует JSON в сообщение, неизвестные поля игнорируются.
func UnmarshalJSON(data []byte, msg proto.Message) error {
	return jsonUnmarshal.Unmarshal(data, msg)
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, fmt.Errorf("marshal %T: not a proto message", v)
	}
	return MarshalJSON(msg)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return fmt.Errorf("unmarshal %T: not a proto message", v)
	}
	if len(data) == 0 {
		proto.Reset(msg)
		return nil
	}
	if err := UnmarshalJSON(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", v, err)
	}
	return nil
}

func (jsonCodec) Name() string { return Codec }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
