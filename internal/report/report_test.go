package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/cerny"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 4)

	slow, err := cerny.Cerny(3)
	require.NoError(t, err)
	res, err := cerny.FindSyncWord(slow)
	require.NoError(t, err)
	printed, err := w.Report(slow, res)
	require.NoError(t, err)
	assert.True(t, printed)

	fast := cerny.MustAutomaton(cerny.LetterAction{0, 1}, cerny.LetterAction{0, 0})
	res, err = cerny.FindSyncWord(fast)
	require.NoError(t, err)
	printed, err = w.Report(fast, res)
	require.NoError(t, err)
	assert.False(t, printed)

	printed, err = w.Report(fast, cerny.NoPath)
	require.NoError(t, err)
	assert.False(t, printed)

	assert.Equal(t, "1 2 0\n1 1 2\n4 baab\n\n", buf.String())
	assert.Equal(t, Summary{Scanned: 3, Reported: 1, Longest: 4}, w.Summary())
}

func TestWriterNegativeThresholdSkipsNoPath(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, -5)
	printed, err := w.Report(cerny.MustAutomaton(), cerny.NoPath)
	require.NoError(t, err)
	assert.False(t, printed)
	assert.Equal(t, -1, w.Summary().Longest)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterError(t *testing.T) {
	w := NewWriter(failingWriter{}, 0)
	_, err := w.Report(cerny.MustAutomaton(cerny.LetterAction{0}), cerny.Result{Length: 0})
	assert.ErrorContains(t, err, "disk full")
}
