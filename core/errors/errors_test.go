package errors

import (
	"errors"
	"testing"
)

func TestAmbiguousHeaderError(t *testing.T) {
	err := NewAmbiguousHeader("doc.ozdf", 7, "### bad")

	want := `doc.ozdf:7: malformed header line "### bad"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrAmbiguousHeader) {
		t.Error("expected error to wrap ErrAmbiguousHeader")
	}
}

func TestDuplicateNameError(t *testing.T) {
	err := NewDuplicateName("doc.ozdf", "block", "GENRE")

	if !errors.Is(err, ErrDuplicateName) {
		t.Error("expected error to wrap ErrDuplicateName")
	}
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatal("errors.As failed for *DuplicateNameError")
	}
	if dup.Name != "GENRE" {
		t.Errorf("Name = %q, want %q", dup.Name, "GENRE")
	}
}

func TestStructuralErrorFormats(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuralError
		want string
	}{
		{
			name: "with line",
			err:  NewStructural("a.ozdf", 3, "list item outside list block"),
			want: "a.ozdf:3: list item outside list block",
		},
		{
			name: "path only",
			err:  NewStructural("a.ozdf", 0, "bad shape"),
			want: "a.ozdf: bad shape",
		},
		{
			name: "message only",
			err:  NewStructural("", 0, "bad shape"),
			want: "bad shape",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSequenceError(t *testing.T) {
	err := NewSequence("CHAPTERS-4.ozdp", 3, 4)

	if !errors.Is(err, ErrSequence) {
		t.Error("expected error to wrap ErrSequence")
	}
	want := "CHAPTERS-4.ozdp: part indices must be contiguous from 1: expected 3, got 4"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestLookupError(t *testing.T) {
	err := NewLookup("doc.ozdf", "block", "TITLE")

	if !errors.Is(err, ErrNotFound) {
		t.Error("expected error to wrap ErrNotFound")
	}
}

func TestSaveTargetError(t *testing.T) {
	var err error = &SaveTargetError{}

	if !errors.Is(err, ErrNoSaveTarget) {
		t.Error("expected error to wrap ErrNoSaveTarget")
	}
}

func TestEmptyContentErrorUnnamed(t *testing.T) {
	err := NewEmptyContent("doc.ozdf", "list item", "", 12)

	want := "doc.ozdf:12: list item (unnamed) has no content"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrEmptyContent) {
		t.Error("expected error to wrap ErrEmptyContent")
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("base error")
	wrapped := Wrap(base, "context")

	if wrapped.Error() != "context: base error" {
		t.Errorf("Wrap() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base")
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := errors.New("base error")
	wrapped := Wrapf(base, "context %d", 42)

	if wrapped.Error() != "context 42: base error" {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}
	if Wrapf(nil, "context %d", 42) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestIsAs(t *testing.T) {
	err := NewMissingField("CHAPTERS-1.ozdp", "DATA")

	if !Is(err, ErrMissingField) {
		t.Error("Is() should match ErrMissingField")
	}
	var mf *MissingFieldError
	if !As(err, &mf) {
		t.Fatal("As() failed for *MissingFieldError")
	}
	if mf.Field != "DATA" {
		t.Errorf("Field = %q, want %q", mf.Field, "DATA")
	}
}
