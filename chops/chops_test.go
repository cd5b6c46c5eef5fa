package chops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryRecv(t *testing.T) {
	tests := []struct {
		name      string
		chFactory func() chan string
		want      string
		want1     Status
	}{
		{
			"Ok",
			func() chan string {
				ch := make(chan string, 1)
				ch <- "Hello"
				return ch
			},
			"Hello",
			Ok,
		},
		{
			"Closed",
			func() chan string {
				ch := make(chan string)
				close(ch)
				return ch
			},
			"",
			Closed,
		},
		{
			"Blocked",
			func() chan string {
				return make(chan string)
			},
			"",
			Blocked,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, got1 := TryRecv(tt.chFactory()).Get()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want1, got1)
		})
	}
}

func TestResult_Match(t *testing.T) {
	var calls []string
	record := func(r Result[int]) {
		r.Match(
			func(v int) { calls = append(calls, "ok") },
			func() { calls = append(calls, "closed") },
			func() { calls = append(calls, "blocked") },
		)
	}

	record(Result[int]{value: 1, status: Ok})
	record(Result[int]{status: Closed})
	record(Result[int]{status: Blocked})
	assert.Equal(t, []string{"ok", "closed", "blocked"}, calls)

	assert.Panics(t, func() { record(Result[int]{status: Status(9)}) })
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Ok", Ok.String())
	assert.Equal(t, "Closed", Closed.String())
	assert.Equal(t, "Blocked", Blocked.String())
	assert.Equal(t, "<invalid chops.Status>", Status(-1).String())
}
