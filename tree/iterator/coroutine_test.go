package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestCoIterate_Exhaust(t *testing.T) {
	var got []int
	for k := range CoIterate[int](NewInOrder(newCompleteTree_2Tall())).Items() {
		got = append(got, k)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, got)

	goleak.VerifyNone(t)
}

func TestCoIterate_Stop(t *testing.T) {
	var got []int
	co := CoIterate[int](NewInOrderReverse(newCompleteTree_2Tall()))
	for k := range co.Items() {
		got = append(got, k)
		if k == 5 {
			co.Stop()
			break
		}
	}

	assert.Equal(t, []int{7, 6, 5}, got)

	goleak.VerifyNone(t)
}

func TestCoIterate_Nil(t *testing.T) {
	_, ok := <-CoIterate[int](nil).Items()
	assert.False(t, ok)

	goleak.VerifyNone(t)
}

func TestCoIterate_Empty(t *testing.T) {
	_, ok := <-CoIterate[int](NewInOrderStack[int](nil, 0)).Items()
	assert.False(t, ok)

	goleak.VerifyNone(t)
}
