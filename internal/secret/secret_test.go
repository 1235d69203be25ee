package secret

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestText_FormattingRedacts(t *testing.T) {
	s := Text("hunter2")

	for _, out := range []string{
		fmt.Sprintf("%v", s),
		fmt.Sprintf("%s", s),
		fmt.Sprintf("%#v", s),
		fmt.Sprint(s),
	} {
		if strings.Contains(out, "hunter2") {
			t.Errorf("formatted output leaked secret: %q", out)
		}
	}
}

func TestText_EmptyFormatsEmpty(t *testing.T) {
	if got := Text("").String(); got != "" {
		t.Errorf("empty secret String() = %q, want empty", got)
	}
}

func TestText_Reveal(t *testing.T) {
	if got := Text("hunter2").Reveal(); got != "hunter2" {
		t.Errorf("Reveal() = %q, want hunter2", got)
	}
}

func TestText_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Text("ssh-ed25519 AAAA"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"ssh-ed25519 AAAA"` {
		t.Errorf("marshal = %s, want the verbatim value", data)
	}

	var back Text
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back.Reveal() != "ssh-ed25519 AAAA" {
		t.Errorf("round trip = %q", back.Reveal())
	}
}
