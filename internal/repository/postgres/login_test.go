package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoginRepository(t *testing.T) {
	db := &Connection{}
	repo := NewLoginRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewRefreshTokenRepository(t *testing.T) {
	db := &Connection{}
	repo := NewRefreshTokenRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
