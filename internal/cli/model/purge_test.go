package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/shadowflee/fluxer/internal/application/port/mocks"
	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/cli/styles"
	"github.com/shadowflee/fluxer/internal/domain/entity"
)

func newPurgeFixture(t *testing.T) (*usecase.PurgeDataUseCase, *portmocks.MockFileSystem) {
	fs := portmocks.NewMockFileSystem(t)
	xdg := portmocks.NewMockXDGPaths(t)

	xdg.EXPECT().ConfigDir().Return("/cfg", nil).Maybe()
	xdg.EXPECT().DataDir().Return("/data", nil).Maybe()
	xdg.EXPECT().StateDir().Return("/state", nil).Maybe()
	xdg.EXPECT().CacheDir().Return("/cache", nil).Maybe()

	fs.EXPECT().Exists(mock.Anything, "/cfg").Return(true, nil).Maybe()
	fs.EXPECT().Exists(mock.Anything, "/data").Return(true, nil).Maybe()
	fs.EXPECT().Exists(mock.Anything, "/state").Return(false, nil).Maybe()
	fs.EXPECT().Exists(mock.Anything, "/cache").Return(false, nil).Maybe()
	fs.EXPECT().GetSize(mock.Anything, mock.Anything).Return(int64(2048), nil).Maybe()

	return usecase.NewPurgeDataUseCase(fs, xdg, nil), fs
}

func loaded(t *testing.T, m PurgeModel) PurgeModel {
	t.Helper()
	msg := m.loadTargets()()
	next, _ := m.Update(msg)
	return next.(PurgeModel)
}

func TestPurgeModel_ListsOnlyExistingTargets(t *testing.T) {
	uc, _ := newPurgeFixture(t)
	m := loaded(t, NewPurgeModel(context.Background(), styles.NewTheme(), uc))

	require.Len(t, m.targets, 2)
	assert.Equal(t, entity.PurgeTargetConfig, m.targets[0].Type)
	assert.Equal(t, entity.PurgeTargetData, m.targets[1].Type)
	assert.Contains(t, m.View(), "2.0 KiB")
}

func TestPurgeModel_NothingSelected(t *testing.T) {
	uc, _ := newPurgeFixture(t)
	m := press(loaded(t, NewPurgeModel(context.Background(), styles.NewTheme(), uc)), "enter").(PurgeModel)

	assert.True(t, m.Done())
	assert.Contains(t, m.View(), "Nothing selected")
}

func TestPurgeModel_DeclineReturnsToSelection(t *testing.T) {
	uc, _ := newPurgeFixture(t)
	m := press(loaded(t, NewPurgeModel(context.Background(), styles.NewTheme(), uc)), "j", " ", "enter", "enter").(PurgeModel)

	assert.Equal(t, purgeSelecting, m.stage)
	assert.Equal(t, []entity.PurgeTargetType{entity.PurgeTargetData}, m.SelectedTypes())
}

func TestPurgeModel_ConfirmRemovesSelection(t *testing.T) {
	uc, fs := newPurgeFixture(t)
	fs.EXPECT().RemoveAll(mock.Anything, "/data").Return(nil).Once()

	m := press(loaded(t, NewPurgeModel(context.Background(), styles.NewTheme(), uc)), "j", " ", "enter", "y")
	m, cmd := m.Update(keyEnter())
	require.NotNil(t, cmd)
	require.Equal(t, purgeRunning, m.(PurgeModel).stage)

	done, _ := m.Update(m.(PurgeModel).performPurge([]entity.PurgeTargetType{entity.PurgeTargetData})())
	pm := done.(PurgeModel)
	require.True(t, pm.Done())
	require.NoError(t, pm.Err())
	assert.Equal(t, 1, pm.results.SuccessCount)
	assert.Contains(t, pm.View(), "/data")
}
