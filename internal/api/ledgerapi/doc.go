// Package ledgerapi holds the generated protobuf messages and gRPC stubs of
// the ledger and auth services. Sources live under proto/cipherledger/v1.
package ledgerapi

//go:generate protoc -I ../../../proto --go_out=../../.. --go_opt=module=github.com/dtroode/cipherledger-server --go-grpc_out=../../.. --go-grpc_opt=module=github.com/dtroode/cipherledger-server cipherledger/v1/ledger.proto cipherledger/v1/auth.proto
