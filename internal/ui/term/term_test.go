package term_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/extq/internal/ui/term"
)

func TestProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, term.Profile())
}

func TestNewOutput_PlainWhenNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	out := term.NewOutput(buf)
	_, err := out.WriteString(out.String("hello").Foreground(termenv.ANSIRed).String())

	assert.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}
