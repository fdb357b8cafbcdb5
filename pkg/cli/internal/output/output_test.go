package output

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"passed": 2}))
	assert.Equal(t, "{\n  \"passed\": 2\n}\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	w := Table(&buf)
	fmt.Fprintln(w, "NAME\tRESULT")
	fmt.Fprintln(w, "first leg\tPASS")
	require.NoError(t, w.Flush())
	assert.Equal(t, "NAME       RESULT\nfirst leg  PASS\n", buf.String())
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "%d file(s) have no cases", 3)
	assert.Equal(t, "Warning: 3 file(s) have no cases\n", buf.String())
}
