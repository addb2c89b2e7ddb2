// Package compiler turns widget DSL source text into a model.Document.
//
// Compilation walks the grammar registry in order, asks the matcher for every
// declaration of each kind, coerces the captured fields to their declared
// types, attaches a resizable layout where the kind requires one, derives the
// node identity and a few computed presentation values, and appends the node.
// The default output is therefore grouped by kind in registry order and, within
// a kind, ordered by source position. OrderSource switches to plain source
// order across kinds.
//
// Compile never fails. Malformed declarations contribute no nodes, and every
// coercion edge case (empty or non-numeric sizes, unknown alert types, a zero
// progress maximum) resolves to a fixed fallback value.
package compiler
