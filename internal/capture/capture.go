// Package capture holds the payload capture adapters: transient buffers the
// save operation consumes and resets. Adapters own their device resources
// and release them on every exit path.
package capture

import (
	"errors"
	"strings"
)

var (
	ErrUnavailable  = errors.New("capture: device unavailable")
	ErrNotRecording = errors.New("capture: not recording")
)

// TextBuffer is the transient note buffer behind the text tab.
type TextBuffer struct {
	content string
}

func (b *TextBuffer) Set(s string) { b.content = s }

func (b *TextBuffer) Content() string { return b.content }

func (b *TextBuffer) Empty() bool { return strings.TrimSpace(b.content) == "" }

func (b *TextBuffer) Reset() { b.content = "" }
