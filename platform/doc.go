// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package platform connects windowing backends to the engine.
//
// A backend delivers raw values (the types in this package, or
// gpucontext.PointerEvent and gpucontext.ScrollEvent) to a callback.
// MapEvent turns each raw value into an event.Event or drops it. Bridge
// adapts any gpucontext.EventSource into that stream, and Headless is a
// scripted window without an operating system behind it.
package platform
