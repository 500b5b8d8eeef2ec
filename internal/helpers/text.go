package helpers

import (
	"github.com/acarl005/stripansi"
)

func StripAnsi(s string) string {
	return stripansi.Strip(s)
}
