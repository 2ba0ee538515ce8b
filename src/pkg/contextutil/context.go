// Package contextutil provides utilities for working with context.Context objects,
// including type-safe storage and retrieval of values.
package contextutil

import (
	"context"
	"fmt"
	"reflect"
)

// ctxKey is a private type used as a key for context values to avoid collisions.
type ctxKey[T any] struct{}

// SetTyped stores a typed value in the context and returns a new context with the value.
// This function provides type safety for context values using Go generics.
func SetTyped[T any](ctx context.Context, val T) context.Context {
	return context.WithValue(ctx, ctxKey[T]{}, val)
}

// RetrieveTyped retrieves a typed value from the context.
// It will panic if the value doesn't exist or is of the wrong type.
// Use TryRetrieveTyped if you want to handle missing values more gracefully.
func RetrieveTyped[T any](ctx context.Context) T {
	val, ok := ctx.Value(ctxKey[T]{}).(T)
	if !ok {
		typeName := reflect.TypeOf((*T)(nil)).Elem().String()
		panic(fmt.Sprintf("contextutil: value of type %s not found in context", typeName))
	}
	return val
}

// TryRetrieveTyped attempts to retrieve a typed value from the context.
// It returns the value and a boolean indicating whether the value was found
// and is of the correct type.
func TryRetrieveTyped[T any](ctx context.Context) (T, bool) {
	val, ok := ctx.Value(ctxKey[T]{}).(T)
	return val, ok
}
