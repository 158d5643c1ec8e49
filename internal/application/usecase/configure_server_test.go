package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shadowflee/fluxer/internal/application/usecase"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/domain/repository"
	repomocks "github.com/shadowflee/fluxer/internal/domain/repository/mocks"
	"github.com/shadowflee/fluxer/internal/domain/validation"
)

func TestConfigureServerUseCase_Save(t *testing.T) {
	ctx := testContext()
	prefs := repomocks.NewMockPreferenceRepository(t)
	prefs.EXPECT().Set(mock.Anything, repository.KeyServerURL, "https://chat.example.com").Return(nil).Once()

	uc := usecase.NewConfigureServerUseCase(prefs)
	got, err := uc.Save(ctx, "  https://chat.example.com ")
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.com", got)
}

func TestConfigureServerUseCase_SaveRejectsInvalid(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewConfigureServerUseCase(repomocks.NewMockPreferenceRepository(t))

	_, err := uc.Save(ctx, "ftp://chat.example.com")
	var urlErr *entity.ServerURLError
	require.ErrorAs(t, err, &urlErr)
	assert.Equal(t, validation.MsgServerURLScheme, urlErr.Message)
}

func TestConfigureServerUseCase_SaveStoreFailure(t *testing.T) {
	ctx := testContext()
	prefs := repomocks.NewMockPreferenceRepository(t)
	prefs.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := usecase.NewConfigureServerUseCase(prefs).Save(ctx, "https://chat.example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestConfigureServerUseCase_Load(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		found  bool
		want   string
	}{
		{name: "valid", stored: "https://chat.example.com", found: true, want: "https://chat.example.com"},
		{name: "missing", found: false, want: ""},
		{name: "not http", stored: "file:///etc/passwd", found: true, want: ""},
		{name: "blank", stored: "  ", found: true, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := repomocks.NewMockPreferenceRepository(t)
			prefs.EXPECT().Get(mock.Anything, repository.KeyServerURL).Return(tt.stored, tt.found, nil)

			got, err := usecase.NewConfigureServerUseCase(prefs).Load(testContext())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
