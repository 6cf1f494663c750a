package worker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_RunsAllSubmittedJobs(t *testing.T) {
	p := NewPool(4)

	var ran atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() { ran.Add(1) })
	}
	p.Stop()

	assert.Equal(t, int64(100), ran.Load())
}

func TestPool_ClampsWorkerCount(t *testing.T) {
	p := NewPool(0)

	done := make(chan struct{})
	p.Submit(func() { close(done) })
	<-done
	p.Stop()
}
