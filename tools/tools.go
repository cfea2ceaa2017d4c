//go:build tools

// Пакет tools фиксирует версии генераторов protoc в go.mod.
// order_service.pb.go и order_service_grpc.pb.go пересобираются командой
//
//	go generate ./proto/...
//
// после установки генераторов:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc
package tools

import (
	_ "google.golang.org/grpc/cmd/protoc-gen-go-grpc"
	_ "google.golang.org/protobuf/cmd/protoc-gen-go"
)
