package testkit

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	clock   = func() string { return "real" }
	maxRows = 1000
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &clock, func() string { return "fake" })
		Swap(t, &maxRows, 3)
		assert.Equal(t, "fake", clock())
		assert.Equal(t, 3, maxRows)
	})
	assert.Equal(t, "real", clock())
	assert.Equal(t, 1000, maxRows)
}

func TestSerial_NoOverlap(t *testing.T) {
	var inside, overlaps int32
	for _, name := range []string{"a", "b", "c"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			Serial(t)
			if atomic.AddInt32(&inside, 1) > 1 {
				atomic.AddInt32(&overlaps, 1)
			}
			Swap(t, &maxRows, 1)
			atomic.AddInt32(&inside, -1)
		})
	}
	t.Cleanup(func() { assert.Zero(t, atomic.LoadInt32(&overlaps)) })
}

func TestEnv(t *testing.T) {
	Env(t, "KIT_TEST_", map[string]string{"DRIVER": "sqlite", "LIST_LIMIT": "5"})
	assert.Equal(t, "sqlite", os.Getenv("KIT_TEST_DRIVER"))
	assert.Equal(t, "5", os.Getenv("KIT_TEST_LIST_LIMIT"))
}
