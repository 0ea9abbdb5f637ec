package worker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsAllTasksBeforeClose(t *testing.T) {
	p := NewPool(3, 10)

	var n atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() { n.Add(1) })
	}
	p.Close()

	assert.Equal(t, int64(100), n.Load())
}

func TestPoolSurvivesPanic(t *testing.T) {
	p := NewPool(1, 1)

	var ran atomic.Bool
	p.Submit(func() { panic("boom") })
	p.Submit(nil)
	p.Submit(func() { ran.Store(true) })
	p.Close()

	assert.True(t, ran.Load())
}

func TestCloseTwice(t *testing.T) {
	p := NewPool(1, 1)
	p.Close()
	assert.NotPanics(t, p.Close)
}
