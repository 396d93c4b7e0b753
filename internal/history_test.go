package internal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"secassist/testutil"
)

func TestHistory_FilePath(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)

	tests := []struct {
		name     string
		threadID string
		want     string
	}{
		{
			name:     "plain id",
			threadID: "start-here",
			want:     filepath.Join(dir, "start-here.json"),
		},
		{
			name:     "id with illegal characters",
			threadID: "a/b:c",
			want:     filepath.Join(dir, "abc.json"),
		},
		{
			name:     "id with spaces",
			threadID: "my chat",
			want:     filepath.Join(dir, "my_chat.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.FilePath(tt.threadID); got != tt.want {
				t.Errorf("FilePath(%q) = %q, want %q", tt.threadID, got, tt.want)
			}
		})
	}
}

func TestNewHistory_CreatesRoot(t *testing.T) {
	dir := filepath.Join(testutil.CreateTempDir(t), "nested", "history")

	NewHistory(dir)
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("History root was not created: %v", err)
	}

	// idempotent
	NewHistory(dir)
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("History root disappeared on second create: %v", err)
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(testutil.CreateTempDir(t))

	got := h.Load("never-saved")
	if len(got) != 0 {
		t.Errorf("Load() on missing file = %v, want empty", got)
	}
}

func TestHistory_RoundTrip(t *testing.T) {
	h := NewHistory(testutil.CreateTempDir(t))

	tests := []struct {
		name     string
		threadID string
		messages []Message
	}{
		{
			name:     "simple exchange",
			threadID: "chat_roundtrip",
			messages: CreateTestMessages(),
		},
		{
			name:     "empty sequence",
			threadID: "chat_empty",
			messages: []Message{},
		},
		{
			name:     "id requiring sanitization",
			threadID: "who?what:where",
			messages: []Message{{Role: RoleUser, Content: "hello"}},
		},
		{
			name:     "multiline content",
			threadID: "chat_multiline",
			messages: []Message{
				{Role: RoleUser, Content: "fix this:\n\nfunc main() {}\n"},
				{Role: RoleAssistant, Content: "line one\nline two"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.Save(tt.threadID, tt.messages)

			got := h.Load(tt.threadID)
			if !reflect.DeepEqual(got, tt.messages) {
				t.Errorf("Load() after Save() = %v, want %v", got, tt.messages)
			}
		})
	}
}

func TestHistory_LoadIdempotent(t *testing.T) {
	h := NewHistory(testutil.CreateTempDir(t))
	h.Save("chat_stable", CreateTestMessages())

	first := h.Load("chat_stable")
	second := h.Load("chat_stable")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("consecutive loads differ: %v vs %v", first, second)
	}
}

func TestHistory_LoadCorruptFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "not JSON at all", data: []byte("{{{{ garbage")},
		{name: "binary garbage", data: []byte{0x00, 0xff, 0x13, 0x37}},
		{name: "JSON object not array", data: []byte(`{"role":"user"}`)},
		{name: "array of strings", data: []byte(`["a","b"]`)},
		{name: "objects missing fields", data: []byte(`[{"role":"user"},{"content":"x"}]`)},
		{name: "truncated file", data: []byte(`[{"role":"user","content":"hel`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.CreateTempDir(t)
			h := NewHistory(dir)
			testutil.WriteRawThreadFile(t, dir, "corrupt", tt.data)

			got := h.Load("corrupt")
			if len(got) != 0 {
				t.Errorf("Load() on corrupt file = %v, want empty", got)
			}
		})
	}
}

func TestHistory_SaveWireFormat(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)

	h.Save("chat_abc", []Message{{Role: RoleUser, Content: "hello"}})

	data, err := os.ReadFile(filepath.Join(dir, "chat_abc.json"))
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}

	// 2-space indented JSON array
	want := "[\n  {\n    \"role\": \"user\",\n    \"content\": \"hello\"\n  }\n]"
	if string(data) != want {
		t.Errorf("saved file = %q, want %q", string(data), want)
	}
}

func TestHistory_SaveNilMessages(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)

	h.Save("chat_nil", nil)

	data, err := os.ReadFile(filepath.Join(dir, "chat_nil.json"))
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("saved nil messages = %q, want empty array", string(data))
	}
}

func TestHistory_SaveOverwrites(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)

	h.Save("chat_grow", []Message{{Role: RoleUser, Content: "first"}})
	h.Save("chat_grow", []Message{
		{Role: RoleUser, Content: "first"},
		{Role: RoleAssistant, Content: "second"},
	})

	got := h.Load("chat_grow")
	if len(got) != 2 {
		t.Fatalf("Load() after overwrite = %d messages, want 2", len(got))
	}

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list history dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestHistory_Remove(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)

	h.Save("chat_doomed", CreateTestMessages())
	if !h.Remove("chat_doomed") {
		t.Error("Remove() = false for existing file")
	}
	if _, err := os.Stat(h.FilePath("chat_doomed")); !os.IsNotExist(err) {
		t.Error("transcript file still exists after Remove()")
	}

	// missing file is reported, not fatal
	if h.Remove("chat_doomed") {
		t.Error("Remove() = true for missing file")
	}
}

func TestHistory_SavedFileParsesAsJSON(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	h := NewHistory(dir)

	h.Save("chat_valid", CreateTestMessages())

	data, err := os.ReadFile(h.FilePath("chat_valid"))
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}

	var parsed []map[string]string
	testutil.JSONUnmarshal(t, data, &parsed)
	if len(parsed) != 2 {
		t.Errorf("parsed %d messages, want 2", len(parsed))
	}
	for i, msg := range parsed {
		if msg["role"] == "" || msg["content"] == "" {
			t.Errorf("message %d missing role or content: %v", i, msg)
		}
	}
	if !json.Valid(data) {
		t.Error("saved file is not valid JSON")
	}
}
