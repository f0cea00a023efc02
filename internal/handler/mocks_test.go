package handler_test

import (
	"context"
	"time"

	"speak-byte/internal/dto"
)

// --- Manual Mocks ---

type MockSpeakingService struct {
	CompareFunc       func(ctx context.Context, req *dto.CompareRequest) (*dto.SpeakingResultResponse, error)
	CheckSpeakingFunc func(ctx context.Context, userID string, req *dto.CheckSpeakingRequest) (*dto.SpeakingResultResponse, error)
}

func (m *MockSpeakingService) Compare(ctx context.Context, req *dto.CompareRequest) (*dto.SpeakingResultResponse, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, req)
	}
	panic("MockSpeakingService.CompareFunc not implemented")
}

func (m *MockSpeakingService) CheckSpeaking(ctx context.Context, userID string, req *dto.CheckSpeakingRequest) (*dto.SpeakingResultResponse, error) {
	if m.CheckSpeakingFunc != nil {
		return m.CheckSpeakingFunc(ctx, userID, req)
	}
	panic("MockSpeakingService.CheckSpeakingFunc not implemented")
}

type MockPointsService struct {
	GetUserPointsFunc  func(ctx context.Context, userID, courseID string) (*dto.PointsResponse, error)
	SyncUserPointsFunc func(ctx context.Context, userID, courseID string) (*dto.SyncPointsResponse, error)
	GetTeamPointsFunc  func(ctx context.Context, courseID string) (*dto.TeamPointsResponse, error)
	GetRankingFunc     func(ctx context.Context, courseID string, limit int) (*dto.RankingResponse, error)
}

func (m *MockPointsService) GetUserPoints(ctx context.Context, userID, courseID string) (*dto.PointsResponse, error) {
	if m.GetUserPointsFunc != nil {
		return m.GetUserPointsFunc(ctx, userID, courseID)
	}
	panic("MockPointsService.GetUserPointsFunc not implemented")
}

func (m *MockPointsService) SyncUserPoints(ctx context.Context, userID, courseID string) (*dto.SyncPointsResponse, error) {
	if m.SyncUserPointsFunc != nil {
		return m.SyncUserPointsFunc(ctx, userID, courseID)
	}
	panic("MockPointsService.SyncUserPointsFunc not implemented")
}

func (m *MockPointsService) GetTeamPoints(ctx context.Context, courseID string) (*dto.TeamPointsResponse, error) {
	if m.GetTeamPointsFunc != nil {
		return m.GetTeamPointsFunc(ctx, courseID)
	}
	panic("MockPointsService.GetTeamPointsFunc not implemented")
}

func (m *MockPointsService) GetRanking(ctx context.Context, courseID string, limit int) (*dto.RankingResponse, error) {
	if m.GetRankingFunc != nil {
		return m.GetRankingFunc(ctx, courseID, limit)
	}
	panic("MockPointsService.GetRankingFunc not implemented")
}

// MockCache only implements Ping meaningfully.
type MockCache struct {
	PingErr error
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.PingErr
}
