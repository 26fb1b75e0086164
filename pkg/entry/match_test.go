package entry

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvalMatch(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  Match
	}{
		{
			name:  "root command",
			entry: Entry{Command: ""},
			want:  Match{Match: []string{""}, Last: []string{}},
		},
		{
			name:  "single segment",
			entry: Entry{Command: "root"},
			want:  Match{Match: []string{"root"}, HasParent: true, Last: []string{}},
		},
		{
			name:  "space separated",
			entry: Entry{Command: "root level2"},
			want:  Match{Match: []string{"root level2"}, Parent: "root", HasParent: true, Last: []string{" level2"}},
		},
		{
			name:  "args do not change matching",
			entry: Entry{Command: "root level2", Args: []Arg{{Name: "arg1"}}},
			want:  Match{Match: []string{"root level2"}, Parent: "root", HasParent: true, Last: []string{" level2"}},
		},
		{
			name:  "aliases are matched",
			entry: Entry{Command: "root", Aliases: []string{"rt", "r"}},
			want:  Match{Match: []string{"root", "rt", "r"}, HasParent: true, Last: []string{}},
		},
		{
			name:  "colon separated",
			entry: Entry{Command: "root:context", Aliases: []string{"root:ctx", "root:c"}},
			want: Match{
				Match:     []string{"root:context", "root:ctx", "root:c"},
				Parent:    "root",
				HasParent: true,
				Last:      []string{":context", ":ctx", ":c"},
			},
		},
		{
			name:  "three colon segments",
			entry: Entry{Command: "root:context:use", Aliases: []string{"root:context:u"}},
			want: Match{
				Match:     []string{"root:context:use", "root:context:u"},
				Parent:    "root:context",
				HasParent: true,
				Last:      []string{":use", ":u"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, EvalMatch(tt.entry)); diff != "" {
				t.Errorf("EvalMatch() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLess(t *testing.T) {
	commands := []string{
		"abc cde", "zxc zxc", "abc cde zxc", "zxc", "abc",
		"bbb cde zxc", "abc efg", "aaa:bbb", "aaa:def:feg", "aaa:def",
	}
	entries := make([]Entry, len(commands))
	for i, c := range commands {
		entries[i] = Entry{Command: c}
	}
	sort.Slice(entries, func(i, j int) bool { return Less(entries[i], entries[j]) })

	var got []string
	for _, e := range entries {
		got = append(got, e.Command)
	}
	want := []string{
		"abc", "zxc", "aaa:bbb", "aaa:def", "abc cde",
		"abc efg", "zxc zxc", "aaa:def:feg", "abc cde zxc", "bbb cde zxc",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sorted order mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := NormalizePath(" abc   cde   1   "); got != "abc cde 1" {
		t.Errorf("NormalizePath() = %q, want %q", got, "abc cde 1")
	}
	if got := NormalizePath(""); got != "" {
		t.Errorf("NormalizePath(\"\") = %q, want empty", got)
	}
}

func TestSplitPath(t *testing.T) {
	want := []string{"root", "ctx", "use", "now"}
	if diff := cmp.Diff(want, SplitPath(" root::ctx:use  now ")); diff != "" {
		t.Errorf("SplitPath() mismatch (-want +got):\n%s", diff)
	}
	if got := SplitPath(""); got != nil {
		t.Errorf("SplitPath(\"\") = %v, want nil", got)
	}
}

func TestOption_FlagKeys(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"peer", "P"}, "--peer, -P"},
		{[]string{"d"}, "-d"},
		{[]string{"t", "target"}, "-t, --target"},
	}
	for _, tt := range tests {
		if got := (Option{Keys: tt.keys}).FlagKeys(); got != tt.want {
			t.Errorf("FlagKeys(%v) = %q, want %q", tt.keys, got, tt.want)
		}
	}
}
