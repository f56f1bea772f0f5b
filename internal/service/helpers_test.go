package service_test

import (
	"github.com/RoxyKang/share-my-place-backend/internal/config"
	"github.com/stretchr/testify/mock"
)

const mockAnything = mock.Anything

func configAuth() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testJWTSecret,
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
	}
}
