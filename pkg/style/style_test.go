package style

import "testing"

func TestParseAndString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single flag", "group", "group;"},
		{"trailing semicolon", "rounded=0;html=1;", "rounded=0;html=1;"},
		{"doubled semicolons", "rounded=0;;html=1", "rounded=0;html=1;"},
		{"leading semicolon", ";rounded=0", "rounded=0;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.input).String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAppendIdempotent(t *testing.T) {
	s := "group;"
	s = AppendToken(s, "container=1")
	s = AppendToken(s, "container=1")

	want := "group;container=1;"
	if s != want {
		t.Errorf("AppendToken twice = %q, want %q", s, want)
	}
}

func TestRemoveToken(t *testing.T) {
	got := RemoveToken("group;container=1;html=1;", "container=1")
	want := "group;html=1;"
	if got != want {
		t.Errorf("RemoveToken = %q, want %q", got, want)
	}
}

func TestStripKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
		want  string
	}{
		{
			name:  "middle token",
			input: "shape=cube;image=data:image/png,abc;html=1;",
			key:   "image",
			want:  "shape=cube;html=1;",
		},
		{
			name:  "trailing token",
			input: "shape=cube;image=data:image/png,abc",
			key:   "image",
			want:  "shape=cube;",
		},
		{
			name:  "absent key",
			input: "shape=cube;html=1;",
			key:   "image",
			want:  "shape=cube;html=1;",
		},
		{
			name:  "only token",
			input: "image=x;",
			key:   "image",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripKey(tt.input, tt.key); got != tt.want {
				t.Errorf("StripKey(%q, %q) = %q, want %q", tt.input, tt.key, got, tt.want)
			}
		})
	}
}

func TestHasAndHasKey(t *testing.T) {
	toks := Parse("group;container=1;image=data:x;")

	if !toks.Has("group") {
		t.Error("Has(group) = false, want true")
	}
	if toks.Has("container") {
		t.Error("Has(container) = true for key=value token, want false")
	}
	if !toks.HasKey("image") {
		t.Error("HasKey(image) = false, want true")
	}
	if toks.HasKey("img") {
		t.Error("HasKey(img) = true, want false")
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("shape=mxgraph.Swimlane;html=1;", "swimlane") {
		t.Error("ContainsFold should match case-insensitively")
	}
	if ContainsFold("rounded=0;", "swimlane") {
		t.Error("ContainsFold matched absent marker")
	}
}
