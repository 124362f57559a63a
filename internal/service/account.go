package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/onboarded/internal/profile"
)

// Route is the first screen shown after launch.
type Route string

const (
	RouteOnboarding Route = "onboarding"
	RouteProfile    Route = "profile"
)

// AccountService decides the launch screen and handles sign-out.
type AccountService struct {
	Profiles profile.Store
	Log      *zap.Logger
}

// Launch reads the stored profile and picks the screen to show.
func (s *AccountService) Launch(ctx context.Context) (Route, profile.Profile, error) {
	if s.Profiles == nil {
		return "", profile.Profile{}, fmt.Errorf("account: profile store not configured")
	}
	p, err := s.Profiles.Read(ctx)
	if err != nil {
		return "", profile.Profile{}, fmt.Errorf("read profile: %w", err)
	}
	route := RouteOnboarding
	if p.SignedIn {
		route = RouteProfile
	}
	s.logger().Info("launch", zap.String("route", string(route)))
	return route, p, nil
}

// SignOut clears the stored profile.
func (s *AccountService) SignOut(ctx context.Context) error {
	if s.Profiles == nil {
		return fmt.Errorf("account: profile store not configured")
	}
	if err := s.Profiles.ClearProfile(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	s.logger().Info("signed out")
	return nil
}

func (s *AccountService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
