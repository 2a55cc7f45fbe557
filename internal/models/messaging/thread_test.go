package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair("bbb", "aaa")
	assert.Equal(t, "aaa", a)
	assert.Equal(t, "bbb", b)

	// Already ordered pairs stay put.
	a, b = NormalizePair("aaa", "bbb")
	assert.Equal(t, "aaa", a)
	assert.Equal(t, "bbb", b)
}

func TestThreadParticipants(t *testing.T) {
	thread := &Thread{ParticipantAID: "aaa", ParticipantBID: "bbb"}

	assert.True(t, thread.HasParticipant("aaa"))
	assert.True(t, thread.HasParticipant("bbb"))
	assert.False(t, thread.HasParticipant("ccc"))

	assert.Equal(t, "bbb", thread.OtherParticipant("aaa"))
	assert.Equal(t, "aaa", thread.OtherParticipant("bbb"))
	assert.Equal(t, "", thread.OtherParticipant("ccc"))
}
