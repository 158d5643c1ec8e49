package grants

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/shadowflee/fluxer/internal/application/port/mocks"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	repomocks "github.com/shadowflee/fluxer/internal/domain/repository/mocks"
)

func TestStore_IsGranted(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockGrantRepository(t)
	repo.EXPECT().Get(mock.Anything, entity.GrantMicrophone).
		Return(&entity.GrantRecord{Grant: entity.GrantMicrophone, Granted: true}, nil)
	repo.EXPECT().Get(mock.Anything, entity.GrantCamera).Return(nil, nil).Once()

	s := NewStore(repo)
	assert.True(t, s.IsGranted(ctx, entity.GrantMicrophone))
	assert.False(t, s.IsGranted(ctx, entity.GrantCamera))

	repo.EXPECT().Get(mock.Anything, entity.GrantCamera).Return(nil, errors.New("locked"))
	assert.False(t, s.IsGranted(ctx, entity.GrantCamera))
}

func TestRecordingDialog_StoresEveryAskedGrant(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockGrantRepository(t)
	inner := portmocks.NewMockPermissionDialog(t)

	asked := []entity.Grant{entity.GrantMicrophone, entity.GrantCamera}
	inner.EXPECT().RequestGrants(mock.Anything, asked, mock.Anything).
		Run(func(_ context.Context, _ []entity.Grant, cb func(map[entity.Grant]bool)) {
			cb(map[entity.Grant]bool{entity.GrantMicrophone: true})
		})

	stored := map[entity.Grant]bool{}
	repo.EXPECT().Set(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r *entity.GrantRecord) error {
			stored[r.Grant] = r.Granted
			assert.Positive(t, r.UpdatedAt)
			return nil
		}).Times(2)

	var got map[entity.Grant]bool
	NewRecordingDialog(inner, NewStore(repo)).RequestGrants(ctx, asked, func(r map[entity.Grant]bool) { got = r })

	assert.Equal(t, map[entity.Grant]bool{entity.GrantMicrophone: true, entity.GrantCamera: false}, stored)
	require.NotNil(t, got)
	assert.True(t, got[entity.GrantMicrophone])
}

func TestRecordingDialog_IgnoresAnswerAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := repomocks.NewMockGrantRepository(t)
	inner := portmocks.NewMockPermissionDialog(t)

	var answer func(map[entity.Grant]bool)
	inner.EXPECT().RequestGrants(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ []entity.Grant, cb func(map[entity.Grant]bool)) { answer = cb })

	calls := 0
	NewRecordingDialog(inner, NewStore(repo)).
		RequestGrants(ctx, []entity.Grant{entity.GrantCamera}, func(map[entity.Grant]bool) { calls++ })

	cancel()
	require.NotNil(t, answer)
	answer(map[entity.Grant]bool{entity.GrantCamera: true})

	assert.Equal(t, 1, calls)
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}
