package quotes

import "testing"

func TestPickReturnsMember(t *testing.T) {
	svc := New(nil, nil)

	members := make(map[string]bool, len(DefaultQuotes))
	for _, q := range DefaultQuotes {
		members[q] = true
	}

	for i := 0; i < 100; i++ {
		q, err := svc.Pick()
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if !members[q] {
			t.Fatalf("picked quote not in list: %q", q)
		}
	}
}

func TestPickCustomList(t *testing.T) {
	svc := New([]string{"only one"}, nil)

	for i := 0; i < 5; i++ {
		q, err := svc.Pick()
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if q != "only one" {
			t.Fatalf("expected the single quote, got %q", q)
		}
	}
}

func TestPickEventuallyVaries(t *testing.T) {
	svc := New([]string{"a", "b"}, nil)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		q, err := svc.Pick()
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		seen[q] = true
	}
	if len(seen) != 2 {
		t.Fatalf("expected both quotes over 200 picks, saw %d", len(seen))
	}
}
