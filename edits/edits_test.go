package edits

import "testing"

func TestExtractWords(t *testing.T) {
	tests := []struct {
		name string
		src  string
		dst  string
		want []Edit
	}{
		{
			name: "no edits",
			src:  "this is fine",
			dst:  "this is fine",
			want: nil,
		},
		{
			name: "two substitutions",
			src:  "Ths is a tst",
			dst:  "This is a test",
			want: []Edit{
				{Pos: 0, Kind: Substitute, From: "Ths", To: "This"},
				{Pos: 3, Kind: Substitute, From: "tst", To: "test"},
			},
		},
		{
			name: "deletion",
			src:  "the the cat",
			dst:  "the cat",
			want: []Edit{
				{Pos: 1, Kind: Delete, From: "the"},
			},
		},
		{
			name: "insertion at end",
			src:  "the cat",
			dst:  "the cat sat",
			want: []Edit{
				{Pos: 2, Kind: Insert, To: "sat"},
			},
		},
		{
			name: "empty source",
			src:  "",
			dst:  "hello",
			want: []Edit{
				{Pos: 0, Kind: Insert, To: "hello"},
			},
		},
		{
			name: "both empty",
			src:  "",
			dst:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(Words(tt.src), Words(tt.dst))
			if len(got) != len(tt.want) {
				t.Fatalf("Extract() returned %d edits, want %d: %v", len(got), len(tt.want), got)
			}
			for _, w := range tt.want {
				g, ok := got[w.Pos]
				if !ok {
					t.Fatalf("Extract() missing edit at position %d", w.Pos)
				}
				if g != w {
					t.Errorf("Extract() edit at %d = %+v, want %+v", w.Pos, g, w)
				}
			}
		})
	}
}

func TestExtractChars(t *testing.T) {
	got := Extract(Chars("Helloworld"), Chars("Hello world"))
	if len(got) != 1 {
		t.Fatalf("Extract() returned %d edits, want 1: %v", len(got), got)
	}
	e, ok := got[5]
	if !ok {
		t.Fatalf("Extract() missing insertion at position 5: %v", got)
	}
	if e.Kind != Insert || e.To != " " {
		t.Errorf("Extract() edit = %+v, want insertion of a space", e)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		corrupted   string
		predicted   string
		groundtruth string
		split       func(string) []string
		want        Counts
	}{
		{
			name:        "perfect spelling correction",
			corrupted:   "Ths is a tst",
			predicted:   "This is a test",
			groundtruth: "This is a test",
			split:       Words,
			want:        Counts{TP: 2, FP: 0, FN: 0},
		},
		{
			name:        "no-op prediction misses all reference edits",
			corrupted:   "Helloworld",
			predicted:   "Helloworld",
			groundtruth: "Hello world",
			split:       Chars,
			want:        Counts{TP: 0, FP: 0, FN: 1},
		},
		{
			name:        "right position wrong value",
			corrupted:   "Ths is fine",
			predicted:   "The is fine",
			groundtruth: "This is fine",
			split:       Words,
			want:        Counts{TP: 0, FP: 1, FN: 1},
		},
		{
			name:        "edit on clean input is a false positive",
			corrupted:   "all is well",
			predicted:   "all was well",
			groundtruth: "all is well",
			split:       Words,
			want:        Counts{TP: 0, FP: 1, FN: 0},
		},
		{
			name:        "everything identical",
			corrupted:   "nothing to do",
			predicted:   "nothing to do",
			groundtruth: "nothing to do",
			split:       Words,
			want:        Counts{TP: 0, FP: 0, FN: 0},
		},
		{
			name:        "empty strings",
			corrupted:   "",
			predicted:   "",
			groundtruth: "",
			split:       Chars,
			want:        Counts{TP: 0, FP: 0, FN: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTriple(tt.corrupted, tt.predicted, tt.groundtruth, tt.split)
			if got != tt.want {
				t.Errorf("ClassifyTriple() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Conservation: tp+fp covers the predicted set and tp+fn covers the
// reference set, for every triple.
func TestClassifyConservation(t *testing.T) {
	triples := []struct {
		corrupted   string
		predicted   string
		groundtruth string
	}{
		{"Ths is a tst", "This is a tst", "This is a test"},
		{"w hat a day", "what a day", "what a day"},
		{"unrelated words here", "completely different text now", "some other reference text"},
		{"", "something", "else"},
	}

	for _, tr := range triples {
		src := Words(tr.corrupted)
		predSet := Extract(src, Words(tr.predicted))
		refSet := Extract(src, Words(tr.groundtruth))
		c := Classify(predSet, refSet)
		if c.TP+c.FP != len(predSet) {
			t.Errorf("tp+fp = %d, want |predicted| = %d for %q", c.TP+c.FP, len(predSet), tr.predicted)
		}
		if c.TP+c.FN != len(refSet) {
			t.Errorf("tp+fn = %d, want |reference| = %d for %q", c.TP+c.FN, len(refSet), tr.groundtruth)
		}
	}
}

func TestCountsF1(t *testing.T) {
	tests := []struct {
		name          string
		counts        Counts
		wantPrecision float64
		wantRecall    float64
		wantF1        float64
	}{
		{"all zero", Counts{}, 0, 0, 0},
		{"perfect", Counts{TP: 4}, 1, 1, 1},
		{"half precision full recall", Counts{TP: 1, FP: 1}, 0.5, 1, 2.0 / 3.0},
		{"no true positives", Counts{FP: 3, FN: 2}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, r, f1 := tt.counts.F1()
			if p != tt.wantPrecision || r != tt.wantRecall || f1 != tt.wantF1 {
				t.Errorf("F1() = (%v, %v, %v), want (%v, %v, %v)",
					p, r, f1, tt.wantPrecision, tt.wantRecall, tt.wantF1)
			}
		})
	}
}
