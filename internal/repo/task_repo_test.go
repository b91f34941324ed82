package repo

import "testing"

func TestBuildOrderBy(t *testing.T) {
	tests := []struct {
		name string
		sort string
		want string
	}{
		{"empty falls back to newest first", "", "created_at DESC"},
		{"single key", "deadline", "deadline ASC"},
		{"descending prefix", "-createdAt", "created_at DESC"},
		{"multiple keys", "priority,-createdAt", "priority ASC, created_at DESC"},
		{"unknown keys dropped", "priority,owner", "priority ASC"},
		{"all unknown falls back", "owner,secret", "created_at DESC"},
		{"injection attempt ignored", "title; DROP TABLE tasks", "created_at DESC"},
		{"whitespace tolerated", " deadline , -priority ", "deadline ASC, priority DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildOrderBy(tt.sort); got != tt.want {
				t.Errorf("buildOrderBy(%q) = %q, want %q", tt.sort, got, tt.want)
			}
		})
	}
}
