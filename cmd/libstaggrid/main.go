// Command libstaggrid is built as a C shared library:
//
//	go build -buildmode=c-shared -o libstaggrid.so ./cmd/libstaggrid
//
// The exported functions live in exports.go (cgo only). See package capi
// for status codes and the ownership contract.
package main

func main() {}
