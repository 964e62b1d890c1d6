package version

import "testing"

func TestGateBoundaries(t *testing.T) {
	tests := []struct {
		name string
		gate Gate
		in   []string
		out  []string
	}{
		{
			name: "at least 5.4",
			gate: AtLeast(5, 4),
			in:   []string{"5.4.0", "5.4.1", "5.5.0", "2018.1.0"},
			out:  []string{"4.7.2", "5.3.9", "5.0.0"},
		},
		{
			name: "below 5.6",
			gate: Below(5, 6),
			in:   []string{"3.5.0", "5.0.0", "5.5.9"},
			out:  []string{"5.6.0", "5.6.1", "2017.1.0"},
		},
		{
			name: "between 5.0 and 5.6",
			gate: Between(New(5), New(5, 6)),
			in:   []string{"5.0.0", "5.3.0", "5.5.9"},
			out:  []string{"4.9.9", "5.6.0", "2018.1.0"},
		},
		{
			name: "below 5.6 and below 5.0",
			gate: Below(5, 6).And(Below(5)),
			in:   []string{"3.0.0", "4.7.2"},
			out:  []string{"5.0.0", "5.5.0", "5.6.0"},
		},
		{
			name: "or",
			gate: Below(4).Or(AtLeast(2018)),
			in:   []string{"3.5.0", "2018.1.0"},
			out:  []string{"4.0.0", "5.6.0", "2017.4.9"},
		},
		{
			name: "not",
			gate: AtLeast(5).Not(),
			in:   []string{"4.7.2"},
			out:  []string{"5.0.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.in {
				if !tt.gate(MustParse(s)) {
					t.Errorf("%s: expected present", s)
				}
			}
			for _, s := range tt.out {
				if tt.gate(MustParse(s)) {
					t.Errorf("%s: expected absent", s)
				}
			}
		})
	}
}

func TestGateDeterministic(t *testing.T) {
	g := Between(New(5), New(5, 6))
	v := New(5, 5, 3)
	first := g(v)
	for i := 0; i < 100; i++ {
		if g(v) != first {
			t.Fatal("gate result changed between calls")
		}
	}
}

func TestNilGatePresent(t *testing.T) {
	var g Gate
	if !g.Present(New(1)) {
		t.Error("nil gate should be present")
	}
	if Gate(Never).Present(New(1)) {
		t.Error("Never should be absent")
	}
	if !Gate(Always).Present(New(1)) {
		t.Error("Always should be present")
	}
}
