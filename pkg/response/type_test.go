package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-scheduler/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	newYork := time.FixedZone("EST", -5*3600)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"UTC", time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01"`},
		{"Ahead of UTC keeps its own day", time.Date(2024, 5, 2, 1, 0, 0, 0, tokyo), `"2024-05-02"`},
		{"Behind UTC keeps its own day", time.Date(2024, 4, 30, 22, 0, 0, 0, newYork), `"2024-04-30"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Date: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}
