package markup

import (
	"strings"
	"testing"
)

func TestStripRST(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"clean", "Amazon integration", "Amazon integration"},
		{"underscore", "x_y", "xy"},
		{"backticks", "``Apache Kafka``", "Apache Kafka"},
		{"link", "`Google <https://cloud.google.com/>`__", "Google https://cloud.google.com/"},
		{"trailing period", "Google services.", "Google services"},
		{"leading and trailing whitespace", " \n Slack \n", "Slack"},
		{"edges only", "a. b.\n", "a. b"},
		{"mid-string newline kept", "line one\nline two", "line one\nline two"},
		{"only cutset", " .\n.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripRST(tt.in); got != tt.want {
				t.Errorf("StripRST(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripRSTRemovesAllDelimiters(t *testing.T) {
	inputs := []string{
		"`a`_<b>",
		"__init__",
		"<<>>``__",
		"`Microsoft Azure <https://azure.microsoft.com/>`__ provider_package",
	}
	for _, in := range inputs {
		got := StripRST(in)
		if strings.ContainsAny(got, "`_<>") {
			t.Errorf("StripRST(%q) = %q, still contains markup delimiters", in, got)
		}
	}
}

func TestStripRSTIdempotent(t *testing.T) {
	in := "`Apache Spark <https://spark.apache.org/>`__."
	once := StripRST(in)
	if twice := StripRST(once); twice != once {
		t.Errorf("StripRST not idempotent: %q then %q", once, twice)
	}
}
