package domain

import (
	"errors"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "sqldoc.parse",
		Kind: KindParse,
		Path: "doctests/demo.sql",
		Line: 12,
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindParse {
		t.Fatalf("expected kind %s", KindParse)
	}

	want := "sqldoc.parse: parse (path=doctests/demo.sql:12): root"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "config.load", Kind: KindInvalidConfig}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("expected IsKind to reject a different kind")
	}
	if IsKind(errors.New("plain"), KindInvalidConfig) {
		t.Fatalf("expected IsKind=false for plain errors")
	}
}

func TestNilOpError(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("unexpected message for nil OpError: %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
