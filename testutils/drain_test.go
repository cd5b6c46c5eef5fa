package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordT struct {
	errors []string
}

func (r *recordT) Helper() {}

func (r *recordT) Log(args ...any) {}

func (r *recordT) Logf(format string, args ...any) {}

func (r *recordT) Error(args ...any) {
	r.errors = append(r.errors, fmt.Sprint(args...))
}

func (r *recordT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func filled(closed bool, data ...int) chan int {
	ch := make(chan int, len(data))
	for _, d := range data {
		ch <- d
	}
	if closed {
		close(ch)
	}
	return ch
}

func TestDrain(t *testing.T) {
	tests := []struct {
		name   string
		data   []int
		ch     chan int
		errors int
	}{
		{"exact", []int{1, 2}, filled(true, 1, 2), 0},
		{"empty closed", nil, filled(true), 0},
		{"unclosed", []int{1}, filled(false, 1), 1},
		{"short", []int{1, 2}, filled(true, 1), 1},
		{"long", []int{1}, filled(true, 1, 2), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recordT{}
			Drain[int](r, tt.data, tt.ch)
			assert.Len(t, r.errors, tt.errors, "%v", r.errors)
		})
	}
}

func TestDrainBlocking(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 1; i <= 3; i++ {
			ch <- i
		}
	}()
	DrainBlocking[int](t, []int{1, 2, 3}, ch, time.Second)

	r := &recordT{}
	DrainBlocking[int](r, []int{1}, make(chan int), 10*time.Millisecond)
	assert.Len(t, r.errors, 1)
}
