package service

import (
	"context"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/snapshot"
	"go.uber.org/zap"
)

// stateReader 解码存储的快照
type stateReader struct {
	codec *snapshot.Codec
	log   *zap.Logger
}

// hydrate 解压快照并校验哈希，哈希不一致只记录告警
func (r *stateReader) hydrate(state *models.WorldState) error {
	if len(state.SnapshotData) == 0 {
		return nil
	}

	snap, err := r.codec.Decode(state.SnapshotData, state.Compression)
	if err != nil {
		return errors.Wrap(err, errors.ErrDataIntegrity)
	}
	ok, err := r.codec.Verify(state.SnapshotData, state.Compression, state.StateHash)
	if err != nil {
		return errors.Wrap(err, errors.ErrDataIntegrity)
	}
	if !ok {
		r.log.Warn("World state hash mismatch",
			zap.Uint("world_state_id", state.ID),
			zap.Uint("game_id", state.GameID),
			zap.Int("tick", state.Tick),
		)
	}

	state.StateSnapshot = snap
	return nil
}

// worldStateService 世界快照查询服务实现
type worldStateService struct {
	repos  *repository.Manager
	states *stateReader
}

// NewWorldStateService 创建世界快照查询服务
func NewWorldStateService(repos *repository.Manager, codec *snapshot.Codec, log *zap.Logger) WorldStateService {
	return &worldStateService{
		repos:  repos,
		states: &stateReader{codec: codec, log: log},
	}
}

// Get 获取单个快照，包含解码后的完整世界状态
func (s *worldStateService) Get(ctx context.Context, id uint) (*models.WorldState, error) {
	var state *models.WorldState
	err := s.repos.WithReadOnlyTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		state, err = tx.WorldState().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.states.hydrate(state); err != nil {
		return nil, err
	}
	return state, nil
}

// List 快照列表，不包含快照正文
func (s *worldStateService) List(ctx context.Context, filter repository.WorldStateFilter, pagination *repository.Pagination) ([]*models.WorldState, error) {
	var states []*models.WorldState
	err := s.repos.WithReadOnlyTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		states, err = tx.WorldState().List(ctx, filter, pagination)
		return err
	})
	if err != nil {
		return nil, err
	}
	return states, nil
}
