// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package step is the generic staged-setup framework.
//
// A Step is a type-specific component of the setup process. Each step kind is
// responsible for one kind of operand, such as an initializer or a command.
//
// Steps merge operands before they execute. The merge boundary is the step's
// scope: either the step kind itself (all operands merge into a single
// operation, see Unique and Unit) or, more commonly, the step kind plus a
// target (all operands added under the same target merge into one operation,
// see Keyed).
//
// # Lifecycle
//
//  1. Registration: a Collection lazily creates one step instance per scope
//     value the first time an operand is appended under it. A scope that never
//     receives an operand never gets an instance, and is never checked or run.
//  2. Execution: Run walks the collection's (scope, step) pairs in order. For
//     each pair the scope decides whether to skip (for example because the
//     target guild is unreachable). Otherwise the step executes once. The first
//     execution error aborts the walk; pairs not reached are never executed.
//
// Registration is single-threaded and happens entirely before execution.
package step
