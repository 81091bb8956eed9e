package strz

import "testing"

func TestFold(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"blank", args{""}, ""},
		{"lower", args{"march"}, "march"},
		{"upper", args{"MARCH"}, "march"},
		{"mixed", args{"MaRcH 1st"}, "march 1st"},
		{"cyrillic", args{"МАРТ"}, "март"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.args.s); got != tt.want {
				t.Errorf("Fold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasPrefixFold(t *testing.T) {
	tests := []struct {
		name      string
		s, prefix string
		want      bool
	}{
		{"empty_prefix", "June", "", true},
		{"exact", "June", "June", true},
		{"lower", "June", "ju", true},
		{"upper", "June", "JU", true},
		{"longer", "June", "Junes", false},
		{"mismatch", "June", "ja", false},
		{"unicode", "Март", "МАР", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPrefixFold(tt.s, tt.prefix); got != tt.want {
				t.Errorf("HasPrefixFold(%q, %q) = %v, want %v", tt.s, tt.prefix, got, tt.want)
			}
		})
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold("December", "dECEMBER") {
		t.Error("EqualFold should ignore case")
	}
	if EqualFold("Dec", "December") {
		t.Error("EqualFold should not match a prefix")
	}
}

func TestIsASCII(t *testing.T) {
	if !IsASCII("May") || IsASCII("Mai ü") {
		t.Error("IsASCII is wrong")
	}
}

func TestToLower(t *testing.T) {
	for _, tt := range []struct{ in, want byte }{
		{'A', 'a'}, {'Z', 'z'}, {'a', 'a'}, {'1', '1'}, {'[', '['}, {'@', '@'},
	} {
		if got := ToLower(tt.in); got != tt.want {
			t.Errorf("ToLower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
