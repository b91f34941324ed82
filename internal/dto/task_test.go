package dto

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantNil bool
		wantErr bool
	}{
		{
			name:  "date only becomes start of day UTC",
			input: `"2026-02-19"`,
			want:  time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: `"2026-02-19T15:04:05Z"`,
			want:  time.Date(2026, time.February, 19, 15, 4, 5, 0, time.UTC),
		},
		{
			name:    "null stays nil",
			input:   `null`,
			wantNil: true,
		},
		{
			name:    "empty string stays nil",
			input:   `""`,
			wantNil: true,
		},
		{
			name:    "garbage rejected",
			input:   `"next tuesday"`,
			wantErr: true,
		},
		{
			name:    "number rejected",
			input:   `1234567890`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if !d.Provided() {
				t.Error("Provided() = false after the field was present in JSON")
			}
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) expected error, got %v", tt.input, d.Ptr())
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			got := d.Ptr()
			if tt.wantNil {
				if got != nil {
					t.Errorf("Ptr() = %v, want nil", got)
				}
				return
			}
			if got == nil || !got.Equal(tt.want) {
				t.Errorf("Ptr() = %v, want %v", got, tt.want)
			}
		})
	}
}

// An absent field and an explicit null both leave the value nil; only
// Provided tells them apart.
func TestDateProvided(t *testing.T) {
	var req UpdateTaskRequest
	if err := json.Unmarshal([]byte(`{"title":"x"}`), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if req.Deadline.Provided() {
		t.Error("Provided() = true for an absent field")
	}

	req = UpdateTaskRequest{}
	if err := json.Unmarshal([]byte(`{"deadline":null}`), &req); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !req.Deadline.Provided() || req.Deadline.Ptr() != nil {
		t.Errorf("null field: Provided() = %v, Ptr() = %v; want true, nil",
			req.Deadline.Provided(), req.Deadline.Ptr())
	}
}
