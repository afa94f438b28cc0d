package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencerRetiresOnDuration(t *testing.T) {
	seq := NewSequencer()
	seq.Start(Animation{Kind: AnimLineClear, Rows: []int{19}})

	done := seq.Advance(LineClearDuration / 2)
	assert.Empty(t, done)
	assert.True(t, seq.ActiveKind(AnimLineClear))

	done = seq.Advance(LineClearDuration / 2)
	assert.Len(t, done, 1)
	assert.Equal(t, AnimLineClear, done[0].Kind)
	assert.Equal(t, []int{19}, done[0].Rows)
	assert.False(t, seq.ActiveKind(AnimLineClear))
}

func TestSequencerIndependentKinds(t *testing.T) {
	seq := NewSequencer()
	seq.Start(Animation{Kind: AnimLineClear, Rows: []int{18, 19}})
	seq.Start(Animation{Kind: AnimHardDrop})

	done := seq.Advance(HardDropDuration + 0.01)
	assert.Len(t, done, 1)
	assert.Equal(t, AnimHardDrop, done[0].Kind)
	assert.True(t, seq.ActiveKind(AnimLineClear))
}

func TestAnimationFractionClamped(t *testing.T) {
	seq := NewSequencer()
	a := seq.Start(Animation{Kind: AnimHardDrop})

	assert.Equal(t, 0.0, a.Fraction(seq.Clock()))

	seq.Advance(HardDropDuration / 2)
	assert.InDelta(t, 0.5, a.Fraction(seq.Clock()), 1e-9)

	seq.Advance(HardDropDuration * 10)
	assert.Equal(t, 1.0, a.Fraction(seq.Clock()))
}

func TestSequencerReset(t *testing.T) {
	seq := NewSequencer()
	seq.Start(Animation{Kind: AnimLineClear, Rows: []int{0}})
	seq.Reset()

	assert.Empty(t, seq.Active())
	assert.Empty(t, seq.Advance(10))
}
