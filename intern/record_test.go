package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	rec := NewRecord("payload", 7)
	assert.Equal(t, "payload", rec.Text)
	assert.Equal(t, uint32(7), rec.ID)
	assert.Zero(t, rec.RefCount, "the owning table sets the count")
}

func TestRecord_Clone(t *testing.T) {
	rec := &Record{RefCount: 3, ID: 9, Text: "value"}
	c := rec.Clone()
	require.NotNil(t, c)
	assert.NotSame(t, rec, c)
	assert.Equal(t, *rec, *c)

	// The clone is independent of the original.
	c.RefCount = 1
	c.Text = "other"
	assert.Equal(t, uint32(3), rec.RefCount)
	assert.Equal(t, "value", rec.Text)
}

func TestRecord_CloneNil(t *testing.T) {
	var rec *Record
	assert.Nil(t, rec.Clone())
}

func TestRecord_CopyFrom(t *testing.T) {
	dst := &Record{}
	src := &Record{RefCount: 2, ID: 4, Text: "src"}

	dst.CopyFrom(src)
	assert.Equal(t, *src, *dst)

	// Nil source leaves the destination untouched.
	dst.CopyFrom(nil)
	assert.Equal(t, *src, *dst)

	// Nil receiver is a no-op.
	var nilDst *Record
	nilDst.CopyFrom(src)
}
