package record

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	buf := &bytes.Buffer{}
	r := &Record{ID: 42, Name: MustBoundedName("Zé do Ponteiro")}

	require.NoError(t, Report(buf, r))

	out := buf.String()
	assert.Equal(t, "ID: 42, Nome: Zé do Ponteiro\n", out)

	idPos := strings.Index(out, "42")
	namePos := strings.Index(out, "Zé do Ponteiro")
	require.GreaterOrEqual(t, idPos, 0)
	require.GreaterOrEqual(t, namePos, 0)
	assert.Less(t, idPos, namePos, "id must come before name")
}

func TestReport_EmptyName(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Report(buf, &Record{ID: 7}))
	assert.Equal(t, "ID: 7, Nome: \n", buf.String())
}

func TestReport_TruncatedNameAsIs(t *testing.T) {
	buf := &bytes.Buffer{}
	name := MustBoundedName(strings.Repeat("b", 80))
	require.NoError(t, Report(buf, &Record{ID: 1, Name: name}))
	assert.Equal(t, "ID: 1, Nome: "+strings.Repeat("b", MaxNameLen)+"\n", buf.String())
}

func TestReport_NilRecord(t *testing.T) {
	err := Report(&bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil record")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestReport_WriteError(t *testing.T) {
	err := Report(failingWriter{}, &Record{ID: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "report record 3")
	assert.Contains(t, err.Error(), "sink closed")
}

func TestLine(t *testing.T) {
	r := &Record{ID: 5, Name: MustBoundedName("Ana")}
	assert.Equal(t, "ID: 5, Nome: Ana", Line(r))
}
