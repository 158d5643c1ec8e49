package usecase

import (
	"context"
	"fmt"

	"github.com/shadowflee/fluxer/internal/application/port"
	"github.com/shadowflee/fluxer/internal/domain/entity"
	"github.com/shadowflee/fluxer/internal/logging"
)

// PurgeDataUseCase handles discovering and purging application data.
type PurgeDataUseCase struct {
	fs      port.FileSystem
	xdg     port.XDGPaths
	desktop port.DesktopIntegration
}

// NewPurgeDataUseCase creates a new PurgeDataUseCase.
func NewPurgeDataUseCase(fs port.FileSystem, xdg port.XDGPaths, desktop port.DesktopIntegration) *PurgeDataUseCase {
	return &PurgeDataUseCase{fs: fs, xdg: xdg, desktop: desktop}
}

// GetPurgeTargets returns all available purge targets with their current state.
func (uc *PurgeDataUseCase) GetPurgeTargets(ctx context.Context) ([]entity.PurgeTarget, error) {
	dirs := []struct {
		typ  entity.PurgeTargetType
		desc string
		get  func() (string, error)
	}{
		{entity.PurgeTargetConfig, "config", uc.xdg.ConfigDir},
		{entity.PurgeTargetData, "data (server address, grants, channels)", uc.xdg.DataDir},
		{entity.PurgeTargetState, "state (logs)", uc.xdg.StateDir},
		{entity.PurgeTargetCache, "cache", uc.xdg.CacheDir},
	}

	baseTargets := make([]entity.PurgeTarget, 0, len(dirs)+1)
	for _, d := range dirs {
		path, err := d.get()
		if err != nil {
			return nil, err
		}
		baseTargets = append(baseTargets, entity.PurgeTarget{Type: d.typ, Path: path, Description: d.desc})
	}

	if uc.desktop != nil {
		status, err := uc.desktop.GetStatus(ctx)
		if err != nil {
			// Desktop status should not block purge targets discovery.
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to get desktop integration status")
		}
		if status != nil {
			baseTargets = append(baseTargets, entity.PurgeTarget{
				Type:        entity.PurgeTargetDesktopFile,
				Path:        status.DesktopFilePath,
				Description: "desktop file",
			})
		}
	}

	targets := make([]entity.PurgeTarget, 0, len(baseTargets))
	for _, t := range baseTargets {
		if t.Path == "" {
			targets = append(targets, t)
			continue
		}
		exists, err := uc.fs.Exists(ctx, t.Path)
		if err != nil {
			return nil, err
		}
		t.Exists = exists
		if exists {
			size, err := uc.fs.GetSize(ctx, t.Path)
			if err != nil {
				return nil, err
			}
			t.Size = size
		}
		targets = append(targets, t)
	}

	return targets, nil
}

// PurgeInput specifies which target types to purge.
type PurgeInput struct {
	TargetTypes []entity.PurgeTargetType
}

// PurgeOutput contains the results of the purge operation.
type PurgeOutput struct {
	Results      []entity.PurgeResult
	TotalSize    int64
	SuccessCount int
	FailureCount int
}

// Execute purges the selected target types.
// Continues on errors, collecting all results.
func (uc *PurgeDataUseCase) Execute(ctx context.Context, input PurgeInput) (*PurgeOutput, error) {
	log := logging.FromContext(ctx)

	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	selected := make(map[entity.PurgeTargetType]struct{}, len(input.TargetTypes))
	for _, tt := range input.TargetTypes {
		selected[tt] = struct{}{}
	}

	out := &PurgeOutput{}
	for _, t := range targets {
		if _, ok := selected[t.Type]; !ok || !t.Exists {
			continue
		}

		res := entity.PurgeResult{Target: t}
		out.TotalSize += t.Size

		if t.Type == entity.PurgeTargetDesktopFile {
			err = uc.desktop.RemoveDesktopFile(ctx)
		} else {
			err = uc.fs.RemoveAll(ctx, t.Path)
		}

		if err != nil {
			res.Error = err
			out.FailureCount++
			log.Warn().Err(err).Str("path", t.Path).Str("type", t.Type.String()).Msg("purge target failed")
		} else {
			res.Success = true
			out.SuccessCount++
			log.Info().Str("path", t.Path).Str("type", t.Type.String()).Msg("purge target removed")
		}

		out.Results = append(out.Results, res)
	}

	if out.FailureCount > 0 {
		return out, fmt.Errorf("failed to remove %d items", out.FailureCount)
	}
	return out, nil
}

// PurgeAll purges all existing targets (for --force mode).
func (uc *PurgeDataUseCase) PurgeAll(ctx context.Context) (*PurgeOutput, error) {
	targets, err := uc.GetPurgeTargets(ctx)
	if err != nil {
		return nil, err
	}

	types := make([]entity.PurgeTargetType, 0, len(targets))
	for _, t := range targets {
		types = append(types, t.Type)
	}

	return uc.Execute(ctx, PurgeInput{TargetTypes: types})
}
