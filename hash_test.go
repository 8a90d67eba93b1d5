package fileverse

import "testing"

func TestFingerprint(t *testing.T) {
	content := []string{"hello", "world"}

	for name, alg := range algNames {
		t.Run(name, func(t *testing.T) {
			a := Fingerprint(content, alg)
			if len(a) != 16 {
				t.Errorf("len = %d, want 16", len(a))
			}
			if b := Fingerprint(content, alg); a != b {
				t.Errorf("not deterministic: %s != %s", a, b)
			}
			if c := Fingerprint([]string{"hello world"}, alg); a == c {
				t.Errorf("line boundaries not part of the hash")
			}
		})
	}
}

func TestFingerprintUnknown(t *testing.T) {
	if got := Fingerprint([]string{"x"}, 99); got != "" {
		t.Errorf("Fingerprint = %q, want empty", got)
	}
}

func TestFingerprintDistinctAlgorithms(t *testing.T) {
	content := []string{"same"}
	seen := map[string]string{}
	for name, alg := range algNames {
		fp := Fingerprint(content, alg)
		if prev, ok := seen[fp]; ok {
			t.Errorf("%s and %s produced the same fingerprint", name, prev)
		}
		seen[fp] = name
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		wantErr bool
	}{
		{"xxh3", AlgXXHash3, false},
		{"fnv1a", AlgFNV1a, false},
		{"blake2b", AlgBlake2b, false},
		{"md5", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("%q: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("%q: got %d, want %d", tt.name, got, tt.want)
		}
	}
}
