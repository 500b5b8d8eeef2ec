package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	for _, interactive := range []bool{true, false} {
		p := createProgressBar(10, "test", interactive)
		assert.NotPanics(t, func() {
			p.Set(3)
			p.Add(7)
			p.Close()
		})
	}
}
