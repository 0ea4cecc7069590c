package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessageUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ChatMessage
	}{
		{
			name: "widget shape with numeric id and type",
			in:   `{"id":1721037600000,"type":"user","content":"hi","timestamp":"2024-07-15T10:00:00.000Z"}`,
			want: ChatMessage{ID: "1721037600000", Role: RoleUser, Content: "hi", Timestamp: time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)},
		},
		{
			name: "ai reply marked as error",
			in:   `{"id":1721037600001,"type":"ai","content":"try again","isError":true}`,
			want: ChatMessage{ID: "1721037600001", Role: RoleAssistant, Content: "try again", IsError: true},
		},
		{
			name: "role wins over type",
			in:   `{"id":"a1","role":"assistant","type":"user","content":"ok"}`,
			want: ChatMessage{ID: "a1", Role: RoleAssistant, Content: "ok"},
		},
		{
			name: "bad timestamp is dropped",
			in:   `{"id":"2","role":"user","content":"x","timestamp":"yesterday"}`,
			want: ChatMessage{ID: "2", Role: RoleUser, Content: "x"},
		},
		{
			name: "missing id and role",
			in:   `{"content":"x"}`,
			want: ChatMessage{Role: RoleUser, Content: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ChatMessage
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Role, got.Role)
			assert.Equal(t, tt.want.Content, got.Content)
			assert.Equal(t, tt.want.IsError, got.IsError)
			assert.True(t, tt.want.Timestamp.Equal(got.Timestamp), "timestamp %v", got.Timestamp)
		})
	}
}

func TestChatMessageUnmarshalRejectsObjectID(t *testing.T) {
	var got []ChatMessage
	err := json.Unmarshal([]byte(`[{"id":{"n":1},"type":"user","content":"x"}]`), &got)
	assert.Error(t, err)
}

func TestChatRole(t *testing.T) {
	assert.Equal(t, RoleAssistant, ChatRole("", "ai"))
	assert.Equal(t, RoleAssistant, ChatRole("", "model"))
	assert.Equal(t, RoleUser, ChatRole("", "User"))
	assert.Equal(t, RoleUser, ChatRole("", ""))
	assert.Equal(t, "system", ChatRole("system", "ai"))
}

func TestTrendOf(t *testing.T) {
	assert.Equal(t, TrendUp, TrendOf(5.3))
	assert.Equal(t, TrendUp, TrendOf(0))
	assert.Equal(t, TrendDown, TrendOf(-2.1))
}
