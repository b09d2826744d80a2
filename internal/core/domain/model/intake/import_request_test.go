package intake_test

import (
	"testing"

	"dealership/internal/core/domain/model/intake"
	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, qty int) intake.Line {
	t.Helper()
	line, err := intake.NewLine(kernel.ID(4), "2025", "Midnight Blue", qty)
	require.NoError(t, err)
	return line
}

func newTestRequest(t *testing.T) *intake.ImportRequest {
	t.Helper()
	r, err := intake.NewImportRequest(kernel.ID(1), kernel.ID(2), "restock Q2",
		[]intake.Line{mustLine(t, 3)})
	require.NoError(t, err)
	return r
}

func TestNewLine(t *testing.T) {
	t.Run("should reject missing fields and non-positive quantity", func(t *testing.T) {
		_, err := intake.NewLine(kernel.ID(0), "2025", "Red", 1)
		require.Error(t, err)

		_, err = intake.NewLine(kernel.ID(4), "", "Red", 1)
		require.Error(t, err)

		_, err = intake.NewLine(kernel.ID(4), "2025", "", 1)
		require.Error(t, err)

		_, err = intake.NewLine(kernel.ID(4), "2025", "Red", 0)
		require.Error(t, err)
	})
}

func TestNewImportRequest(t *testing.T) {
	t.Run("should start REQUESTED", func(t *testing.T) {
		r := newTestRequest(t)

		assert.Equal(t, intake.Requested, r.Status())
		assert.Len(t, r.Lines(), 1)
		assert.Equal(t, 3, r.Lines()[0].Quantity())
	})

	t.Run("should require at least one line", func(t *testing.T) {
		_, err := intake.NewImportRequest(kernel.ID(1), kernel.ID(2), "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestImportRequest_TransitionTo(t *testing.T) {
	t.Run("should decide each way exactly once", func(t *testing.T) {
		approved := newTestRequest(t)
		require.NoError(t, approved.TransitionTo(intake.Approved))
		assert.True(t, approved.Status().IsTerminal())

		rejected := newTestRequest(t)
		require.NoError(t, rejected.TransitionTo(intake.Rejected))
		assert.True(t, rejected.Status().IsTerminal())
	})

	t.Run("should refuse flipping a rejected request to approved", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.TransitionTo(intake.Rejected))

		err := r.TransitionTo(intake.Approved)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, intake.Rejected, r.Status())
	})

	t.Run("should refuse re-approving and invalid targets", func(t *testing.T) {
		r := newTestRequest(t)
		require.NoError(t, r.TransitionTo(intake.Approved))

		require.ErrorIs(t, r.TransitionTo(intake.Approved), errs.ErrInvalidTransition)
		require.Error(t, r.TransitionTo(intake.Unknown))
	})
}
