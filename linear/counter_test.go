package linear

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOperationCounter(t *testing.T) {
	c := NewOperationCounter()
	assert.Equal(t, Counts{}, c.Snapshot())

	c.fma()
	c.fma()
	c.div()
	c.sub()
	c.swap()

	assert.Equal(t, 3, c.AddSub())
	assert.Equal(t, 3, c.MulDiv())
	assert.Equal(t, 1, c.Swaps())
	assert.Equal(t, 6, c.Total())
	assert.Equal(t, Counts{AddSub: 3, MulDiv: 3, Swaps: 1}, c.Snapshot())
	assert.Contains(t, c.String(), "multiplications/divisions: 3")

	other := NewOperationCounter()
	other.div()
	c.Add(other)
	c.Add(nil)
	assert.Equal(t, 4, c.MulDiv())

	c.Reset()
	assert.Equal(t, Counts{}, c.Snapshot())
}

func TestOperationCounterZerolog(t *testing.T) {
	c := NewOperationCounter()
	c.fma()
	c.swap()

	var buf bytes.Buffer
	lg := zerolog.New(&buf)
	lg.Info().Object("ops", c).Msg("done")

	assert.Contains(t, buf.String(), `"ops":{"add_sub":1,"mul_div":1,"swaps":1}`)
}
