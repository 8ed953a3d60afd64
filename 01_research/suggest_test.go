package research

import "testing"

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ELI5: How do index funds work?", "How do index funds work?"},
		{"LPT: Automate your savings", "Automate your savings"},
		{"  plain title  ", "plain title"},
		{"[Serious] What happens to unclaimed pensions?", "What happens to unclaimed pensions?"},
	}
	for _, c := range cases {
		if got := cleanTitle(c.in); got != c.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
