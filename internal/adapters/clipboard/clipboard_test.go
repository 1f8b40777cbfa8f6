package clipboard

import (
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
)

func TestWriteAllWithoutUtility(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("clipboard utility present")
	}

	err := System{}.WriteAll("addr")
	assert.ErrorIs(t, err, ErrUnavailable)
}
