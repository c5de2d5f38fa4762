package tablegen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/tablegen"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := tablegen.NewNotFoundError("User")
		assert.Equal(t, "tablegen: User not found", err.Error())
	})

	t.Run("ErrorWithKey", func(t *testing.T) {
		err := tablegen.NewNotFoundErrorWithKey("User", 42, "eu")
		assert.Equal(t, "tablegen: User not found (key=[42 eu])", err.Error())
		assert.Equal(t, []any{42, "eu"}, err.Key())
		assert.Equal(t, "User", err.Label())
	})

	t.Run("Is", func(t *testing.T) {
		err := tablegen.NewNotFoundError("Post")
		assert.True(t, errors.Is(err, tablegen.ErrNotFound))
	})

	t.Run("IsNotFound", func(t *testing.T) {
		err := tablegen.NewNotFoundError("Comment")
		assert.True(t, tablegen.IsNotFound(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, tablegen.IsNotFound(wrapped))

		// Sentinel error
		assert.True(t, tablegen.IsNotFound(tablegen.ErrNotFound))

		// Non-matching error
		assert.False(t, tablegen.IsNotFound(errors.New("other error")))
		assert.False(t, tablegen.IsNotFound(nil))
	})
}
