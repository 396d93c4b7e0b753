package internal

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseHistory(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []Message
		wantErr bool
	}{
		{
			name: "valid history",
			data: `[{"role":"user","content":"hello"},{"role":"assistant","content":"hi"}]`,
			want: []Message{
				{Role: RoleUser, Content: "hello"},
				{Role: RoleAssistant, Content: "hi"},
			},
		},
		{
			name: "empty array",
			data: `[]`,
			want: []Message{},
		},
		{
			name:    "not JSON",
			data:    `this is not json`,
			wantErr: true,
		},
		{
			name:    "object instead of array",
			data:    `{"role":"user","content":"hello"}`,
			wantErr: true,
		},
		{
			name:    "array of non-objects",
			data:    `["hello","hi"]`,
			wantErr: true,
		},
		{
			name:    "missing role field",
			data:    `[{"content":"hello"}]`,
			wantErr: true,
		},
		{
			name:    "missing content field",
			data:    `[{"role":"user"}]`,
			wantErr: true,
		},
		{
			name:    "non-string role",
			data:    `[{"role":1,"content":"hello"}]`,
			wantErr: true,
		},
		{
			name:    "non-string content",
			data:    `[{"role":"user","content":{"nested":true}}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHistory([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHistory() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var formatErr *HistoryFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("ParseHistory() error = %T, want *HistoryFormatError", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseHistory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranscript_MessageCount(t *testing.T) {
	transcript := CreateTestTranscript("chat_counting")
	if got := transcript.MessageCount(); got != 2 {
		t.Errorf("MessageCount() = %d, want 2", got)
	}

	empty := CreateTestTranscriptWithMessages("chat_empty", nil)
	if got := empty.MessageCount(); got != 0 {
		t.Errorf("MessageCount() = %d, want 0", got)
	}
}
