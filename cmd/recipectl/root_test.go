package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("recipectl %v: %v", args, err)
	}
	return out.String()
}

func TestClassifyCommand(t *testing.T) {
	got := runCLI(t, "classify", "-o", "text", "thay", "thế", "đường", "bằng", "gì")
	if strings.TrimSpace(got) != "Substitution" {
		t.Errorf("output = %q, want Substitution", got)
	}

	var parsed map[string]string
	if err := json.Unmarshal([]byte(runCLI(t, "classify", "-o", "json", "bao nhiêu calo")), &parsed); err != nil {
		t.Fatalf("json output: %v", err)
	}
	if parsed["intent"] != "Nutrition" {
		t.Errorf("intent = %q", parsed["intent"])
	}
}

func TestMentionsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	data := "recipes:\n  - id: 12\n    title: Phở Bò\n  - id: 7\n    title: Bún Chả\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got := runCLI(t, "mentions", "-o", "text", "--catalog", path, "cách làm phở bò")
	if strings.TrimSpace(got) != "12\tPhở Bò" {
		t.Errorf("output = %q", got)
	}
}
