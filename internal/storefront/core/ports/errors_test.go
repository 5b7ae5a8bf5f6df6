package ports

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindClassification(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ErrorKind(""), Kind(nil))
	assert.Equal(t, KindUnknown, Kind(errors.New("boom")))

	svcErr := &ServiceError{Kind: KindConflict, Message: "already finalized"}
	assert.Equal(t, KindConflict, Kind(svcErr))
	assert.True(t, IsKind(svcErr, KindConflict))
	assert.False(t, IsKind(svcErr, KindNotFound))
}

func TestKindSurvivesWrapping(t *testing.T) {
	t.Parallel()

	svcErr := &ServiceError{Kind: KindNotFound}
	wrapped := fmt.Errorf("loading order: %w", svcErr)
	assert.Equal(t, KindNotFound, Kind(wrapped))
}

func TestServiceErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	svcErr := &ServiceError{Kind: KindNetworkFailure, Message: "remote unreachable", Err: cause}
	assert.ErrorIs(t, svcErr, cause)
	assert.Contains(t, svcErr.Error(), "network_failure")
	assert.Contains(t, svcErr.Error(), "remote unreachable")
}
