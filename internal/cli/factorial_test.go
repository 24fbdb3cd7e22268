package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ponteiro/internal/factorial"
)

func TestFactorialCommand(t *testing.T) {
	stdout, stderr, code := execute(t, Deps{}, "factorial", "9")

	assert.Equal(t, ExitSuccess, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "9! = 362880\n", stdout)
}

func TestFactorialCommand_JSON(t *testing.T) {
	stdout, _, code := execute(t, Deps{}, "--format", "json", "factorial", "5")
	require.Equal(t, ExitSuccess, code)

	var resp struct {
		Status string          `json:"status"`
		Data   factorial.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, factorial.Entry{N: 5, Value: 120}, resp.Data)
}

func TestFactorialCommand_Negative(t *testing.T) {
	stdout, stderr, code := execute(t, Deps{}, "factorial", "--", "-1")

	assert.Equal(t, ExitCommandError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error [E201]")
	assert.Contains(t, stderr, "INVALID_ARGUMENT")
}

func TestFactorialCommand_Overflow(t *testing.T) {
	_, stderr, code := execute(t, Deps{}, "factorial", "21")

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "Error [E202]")
}

func TestFactorialCommand_NotANumber(t *testing.T) {
	_, stderr, code := execute(t, Deps{}, "factorial", "nove")

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, `invalid number "nove"`)
}
