package handler_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/messagekit/composer/handler"
)

func sink(_ context.Context, _ map[string]any) error { return nil }

func TestRegister(t *testing.T) {
	tests := []struct {
		name        string
		handlerName string
		h           handler.Handler
		wantErr     error
	}{
		{name: "valid handler", handlerName: "register_valid", h: sink},
		{name: "empty name", handlerName: "", h: sink, wantErr: handler.ErrEmptyName},
		{name: "nil handler", handlerName: "register_nil", h: nil, wantErr: handler.ErrNilHandler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handler.Register(tt.handlerName, tt.h)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("Register() unexpected error: %v", err)
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	if err := handler.Register("register_duplicate", sink); err != nil {
		t.Fatalf("first Register() failed: %v", err)
	}

	err := handler.Register("register_duplicate", sink)
	if !errors.Is(err, handler.ErrAlreadyExists) {
		t.Errorf("second Register() error = %v, want %v", err, handler.ErrAlreadyExists)
	}
}

func TestReplace(t *testing.T) {
	if err := handler.Register("replace_existing", sink); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	var called bool
	replacement := func(_ context.Context, _ map[string]any) error {
		called = true
		return nil
	}

	if err := handler.Replace("replace_existing", replacement); err != nil {
		t.Fatalf("Replace() failed: %v", err)
	}

	if err := handler.Invoke(context.Background(), "replace_existing", nil); err != nil {
		t.Fatalf("Invoke() failed: %v", err)
	}
	if !called {
		t.Error("replacement handler was not invoked")
	}
}

func TestReplace_NotFound(t *testing.T) {
	err := handler.Replace("replace_missing", sink)
	if !errors.Is(err, handler.ErrNotFound) {
		t.Errorf("Replace() error = %v, want %v", err, handler.ErrNotFound)
	}
}

func TestGet(t *testing.T) {
	if err := handler.Register("get_existing", sink); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if _, ok := handler.Get("get_existing"); !ok {
		t.Error("Get() should find a registered handler")
	}
	if _, ok := handler.Get("get_missing"); ok {
		t.Error("Get() should not find an unregistered handler")
	}
}

func TestList_Sorted(t *testing.T) {
	if err := handler.Register("list_b", sink); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := handler.Register("list_a", sink); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	names := handler.List()
	if !slices.IsSorted(names) {
		t.Errorf("List() should be sorted, got %v", names)
	}
	if !slices.Contains(names, "list_a") || !slices.Contains(names, "list_b") {
		t.Errorf("List() missing registered names, got %v", names)
	}
}

func TestInvoke(t *testing.T) {
	var got map[string]any
	capture := func(_ context.Context, payload map[string]any) error {
		got = payload
		return nil
	}
	if err := handler.Register("invoke_capture", capture); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	payload := map[string]any{"content": "hi"}
	if err := handler.Invoke(context.Background(), "invoke_capture", payload); err != nil {
		t.Fatalf("Invoke() failed: %v", err)
	}
	if got["content"] != "hi" {
		t.Errorf("handler received payload %v, want content=hi", got)
	}
}

func TestInvoke_NotFound(t *testing.T) {
	err := handler.Invoke(context.Background(), "invoke_missing", nil)
	if !errors.Is(err, handler.ErrNotFound) {
		t.Errorf("Invoke() error = %v, want %v", err, handler.ErrNotFound)
	}
}

func TestInvoke_WrapsHandlerError(t *testing.T) {
	boom := errors.New("boom")
	failing := func(_ context.Context, _ map[string]any) error { return boom }
	if err := handler.Register("invoke_failing", failing); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	err := handler.Invoke(context.Background(), "invoke_failing", nil)
	if !errors.Is(err, boom) {
		t.Errorf("Invoke() error = %v, want wrapped %v", err, boom)
	}
}
