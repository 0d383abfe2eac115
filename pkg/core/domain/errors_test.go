package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorage(t *testing.T) {
	assert.NoError(t, Storage("list", nil))

	cause := errors.New("disk I/O error")
	err := Storage("create", cause)

	var se *StorageError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "create", se.Op)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "storage create: disk I/O error", err.Error())
	assert.False(t, errors.Is(err, ErrNotFound))
}
