package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError_Error(t *testing.T) {
	e := WithCode(New("boom"), ExitUser)
	assert.Equal(t, "boom", e.Error())

	empty := WithCode(nil, ExitBlocked)
	assert.Equal(t, "exit code 2", empty.Error())
}

func TestExitError_Unwrap(t *testing.T) {
	base := New("base")
	e := WithCode(Wrap(base, "context"), ExitUser)
	assert.True(t, Is(e, base))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitUser, ExitCode(New("plain")))
	assert.Equal(t, ExitBlocked, ExitCode(BlockedError("denied")))
	assert.Equal(t, ExitBlocked, ExitCode(Wrap(BlockedError("denied"), "running hook")))

	var ee *ExitError
	assert.True(t, As(BlockedError("denied"), &ee))
	assert.Equal(t, ExitBlocked, ee.Code)
}

func TestUserError_Suggestion(t *testing.T) {
	e := UserError(New("bad flag"), "see udt --help")
	assert.Equal(t, ExitUser, e.Code)
	assert.Equal(t, "see udt --help", e.Suggestion)
}
