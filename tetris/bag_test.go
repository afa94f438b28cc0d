package tetris

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagDealsPermutations(t *testing.T) {
	bag := NewBag(rand.New(rand.NewPCG(1, 2)))

	for round := 0; round < 5; round++ {
		seen := map[Kind]bool{}
		for i := 0; i < NumKinds; i++ {
			seen[bag.Next()] = true
		}
		assert.Len(t, seen, NumKinds, "round %d must contain every kind once", round)
	}
}

func TestBagPeekDoesNotConsume(t *testing.T) {
	bag := NewBag(rand.New(rand.NewPCG(3, 4)))

	next := bag.Peek()
	assert.Equal(t, next, bag.Peek())
	assert.Equal(t, next, bag.Next())
}

func TestBagDeterministicWithSeed(t *testing.T) {
	a := NewBag(rand.New(rand.NewPCG(9, 9)))
	b := NewBag(rand.New(rand.NewPCG(9, 9)))

	for i := 0; i < 3*NumKinds; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestBagReset(t *testing.T) {
	bag := NewBag(rand.New(rand.NewPCG(5, 6)))
	bag.Next()
	bag.Reset()

	seen := map[Kind]bool{}
	for i := 0; i < NumKinds; i++ {
		seen[bag.Next()] = true
	}
	assert.Len(t, seen, NumKinds)
}
