// Package demo builds the six end-to-end scenarios of spec section
// 8 (S1-S6) as runnable, checkable fixtures shared by cmd/cacophonyrt
// and this package's tests. Each scenario drives a fresh
// internal/gc.Runtime through internal/compilerstub exactly the way
// compiled Cacophony code would, then checks the outcome spec
// predicts.
package demo
