// Code generation entry points. Requires protoc, protoc-gen-go and
// protoc-gen-go-grpc on PATH.

//go:generate protoc --go_out=. --go_opt=module=mealmatch --go-grpc_out=. --go-grpc_opt=module=mealmatch proto/storage/storage.proto
//go:generate protoc --go_out=. --go_opt=module=mealmatch --go-grpc_out=. --go-grpc_opt=module=mealmatch proto/account/account.proto
//go:generate protoc --go_out=. --go_opt=module=mealmatch --go-grpc_out=. --go-grpc_opt=module=mealmatch proto/bargain/bargain.proto

package mealmatch
