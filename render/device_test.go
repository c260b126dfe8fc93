// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBackend(t *testing.T) {
	tests := []struct {
		name    string
		want    gputypes.Backend
		wantErr error
	}{
		{"noop", gputypes.BackendEmpty, nil},
		{" NOOP ", gputypes.BackendEmpty, nil},
		{"directx9", 0, ErrUnknownBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Backend(tt.name)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Backend(%q) error = %v, want %v", tt.name, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Backend(%q): %v", tt.name, err)
			}
			if b.Variant() != tt.want {
				t.Errorf("Variant() = %v, want %v", b.Variant(), tt.want)
			}
		})
	}
}

func TestBackendAuto(t *testing.T) {
	// The noop backend is always registered, so auto selection succeeds.
	b, err := Backend("auto")
	if err != nil {
		t.Fatalf("Backend(auto): %v", err)
	}
	if b == nil {
		t.Fatal("Backend(auto) returned nil")
	}
}

func TestOpenDeviceNoop(t *testing.T) {
	b, err := Backend("noop")
	if err != nil {
		t.Fatalf("Backend: %v", err)
	}
	d, err := OpenDevice(b, 0, 0)
	if err != nil {
		t.Fatalf("OpenDevice: %v", err)
	}
	if d.Device == nil || d.Queue == nil || d.Surface == nil || d.Instance == nil {
		t.Fatalf("OpenDevice returned incomplete device: %+v", d)
	}
	if !strings.Contains(d.GPUInfo(), d.Info.Name) {
		t.Errorf("GPUInfo() = %q, want it to contain %q", d.GPUInfo(), d.Info.Name)
	}

	r, err := NewForDevice(d, 64, 64)
	if err != nil {
		t.Fatalf("NewForDevice: %v", err)
	}
	if err := r.Render(newTestScene(quad("a", nil))); err != nil {
		t.Errorf("Render: %v", err)
	}
	r.Close()

	d.Close()
	if d.Device != nil || d.Surface != nil || d.Instance != nil {
		t.Error("Close did not release the device")
	}
	d.Close()
}
