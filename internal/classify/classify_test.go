package classify

import "testing"

func TestIsSpaceExcludesNBSP(t *testing.T) {
	if IsSpace(' ') {
		t.Fatalf("IsSpace(NBSP) = true, want false")
	}
	if !IsSpace(' ') || !IsSpace('\t') {
		t.Fatalf("IsSpace should accept plain space and tab")
	}
}

func TestIsNBSP(t *testing.T) {
	if !IsNBSP(' ') {
		t.Fatalf("IsNBSP(NBSP) = false, want true")
	}
	if IsNBSP(' ') {
		t.Fatalf("IsNBSP(space) = true, want false")
	}
}

func TestIsIdentStartPermitsNonASCII(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'_', true}, {'a', true}, {'Z', true},
		{'0', false}, {'$', false},
		{'é', true}, {'π', true},
	}
	for _, c := range cases {
		if got := IsIdentStart(c.r); got != c.want {
			t.Errorf("IsIdentStart(%q) = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestIsIdentContinueAcceptsDigits(t *testing.T) {
	if !IsIdentContinue('9') {
		t.Fatalf("IsIdentContinue('9') = false, want true")
	}
	if !IsIdentContinue('_') {
		t.Fatalf("IsIdentContinue('_') = false, want true")
	}
}

func TestIsOperatorStartExcludesEverythingElse(t *testing.T) {
	excluded := []rune{' ', '\n', '"', '\'', '5', 'x', '#', '\\', ' '}
	for _, r := range excluded {
		if IsOperatorStart(r) {
			t.Errorf("IsOperatorStart(%q) = true, want false", r)
		}
	}
	included := []rune{'+', '-', '*', '(', ')', '@', '^'}
	for _, r := range included {
		if !IsOperatorStart(r) {
			t.Errorf("IsOperatorStart(%q) = false, want true", r)
		}
	}
}

func TestIsHexAndBinDigit(t *testing.T) {
	for _, r := range []rune{'0', '9', 'a', 'f', 'A', 'F'} {
		if !IsHexDigit(r) {
			t.Errorf("IsHexDigit(%q) = false, want true", r)
		}
	}
	if IsHexDigit('g') {
		t.Fatalf("IsHexDigit('g') = true, want false")
	}
	if !IsBinDigit('0') || !IsBinDigit('1') {
		t.Fatalf("IsBinDigit should accept 0 and 1")
	}
	if IsBinDigit('2') {
		t.Fatalf("IsBinDigit('2') = true, want false")
	}
}
