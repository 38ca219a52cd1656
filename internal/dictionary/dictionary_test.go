package dictionary

import "testing"

func buildDict(words map[string]int) *Dictionary {
	d := New()
	for word, count := range words {
		for i := 0; i < count; i++ {
			d.Add(word)
		}
	}
	return d
}

func TestAddAndContains(t *testing.T) {
	d := buildDict(map[string]int{"harvard": 3, "university": 5})
	if !d.Contains("harvard") {
		t.Error("harvard should be present")
	}
	if d.Contains("yale") {
		t.Error("yale should be absent")
	}
	if d.Frequency("university") != 5 {
		t.Errorf("frequency = %d, want 5", d.Frequency("university"))
	}
	if d.Frequency("yale") != 0 {
		t.Errorf("absent frequency = %d, want 0", d.Frequency("yale"))
	}
	if d.Len() != 2 {
		t.Errorf("len = %d, want 2", d.Len())
	}
}

func TestLookupWithinDistance_ordering(t *testing.T) {
	d := buildDict(map[string]int{
		"bank":  10, // distance 1 from "bakk"
		"tank":  3,  // distance 2
		"rank":  3,  // distance 2, frequency tie with tank
		"blank": 2,  // distance 2
	})

	matches := d.LookupWithinDistance("bakk", 2)
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	// distance 1: bank. distance 2: tank, rank (freq tie -> lexical), blank.
	if matches[0].Term.Word != "bank" || matches[0].Distance != 1 {
		t.Errorf("first match = %+v, want bank at distance 1", matches[0])
	}
	for i := 1; i < len(matches); i++ {
		prev, curr := matches[i-1], matches[i]
		if curr.Distance < prev.Distance {
			t.Errorf("distance order violated at %d: %+v before %+v", i, prev, curr)
		}
		if curr.Distance == prev.Distance {
			if curr.Term.Frequency > prev.Term.Frequency {
				t.Errorf("frequency order violated at %d", i)
			}
			if curr.Term.Frequency == prev.Term.Frequency && curr.Term.Word < prev.Term.Word {
				t.Errorf("lexical order violated at %d", i)
			}
		}
	}
}

func TestLookupWithinDistance_excludesSelf(t *testing.T) {
	d := buildDict(map[string]int{"bank": 1, "tank": 1})
	for _, m := range d.LookupWithinDistance("bank", 2) {
		if m.Term.Word == "bank" {
			t.Error("lookup should exclude the word itself")
		}
	}
}

func TestLookupWithinDistance_budget(t *testing.T) {
	d := buildDict(map[string]int{"university": 1})
	if got := d.LookupWithinDistance("universtiy", 1); len(got) != 0 {
		t.Errorf("distance-2 term should not match at budget 1: %v", got)
	}
	got := d.LookupWithinDistance("universtiy", 2)
	if len(got) != 1 || got[0].Term.Word != "university" || got[0].Distance != 2 {
		t.Errorf("budget 2 lookup = %v", got)
	}
}

func TestLookupWithinDistance_lengthPrefilter(t *testing.T) {
	d := buildDict(map[string]int{"massachusetts": 1})
	if got := d.LookupWithinDistance("ma", 2); len(got) != 0 {
		t.Errorf("length prefilter should exclude far terms: %v", got)
	}
}

func TestLookupWithinDistance_zeroBudget(t *testing.T) {
	d := buildDict(map[string]int{"bank": 1})
	if got := d.LookupWithinDistance("bakk", 0); got != nil {
		t.Errorf("zero budget should return nil, got %v", got)
	}
}
