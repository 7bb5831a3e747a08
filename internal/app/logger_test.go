package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("render", "placed %d icons", 8)
	l.Errorf("fonts", "missing %s", "DejaVuSans.ttf")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], " [INFO] render: placed 8 icons"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " [ERROR] fonts: missing DejaVuSans.ttf"), lines[1])
}

func TestMultiLogger(t *testing.T) {
	var a, b bytes.Buffer
	m := MultiLogger{NewFileLogger(&a), NoopLogger{}, NewFileLogger(&b)}
	m.Infof("main", "hello")
	assert.Contains(t, a.String(), "[INFO] main: hello")
	assert.Contains(t, b.String(), "[INFO] main: hello")
}
