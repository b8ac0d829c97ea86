// Package ent contains the committed schema definitions; the client code is
// produced by `go generate ./ent`.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --feature sql/lock ./schema
