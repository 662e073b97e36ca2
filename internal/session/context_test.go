// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_NoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	ctx, err := Load(context.Background(), false)
	require.NoError(t, err)

	sess := From(ctx)
	require.NotNil(t, sess)
	assert.Nil(t, sess.Config)
	assert.NotNil(t, sess.Logger)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ConfigFileName),
		[]byte("version: 1\ncodec: deflate\nlevel: 3\n"),
		0o600,
	))
	chdir(t, dir)

	ctx, err := Load(context.Background(), false)
	require.NoError(t, err)

	sess := From(ctx)
	require.NotNil(t, sess)
	require.NotNil(t, sess.Config)
	assert.Equal(t, "deflate", sess.Config.Codec)
	assert.Equal(t, 3, sess.Config.Level)
}

func TestLoad_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ConfigFileName),
		[]byte("version: 99\n"),
		0o600,
	))
	chdir(t, dir)

	_, err := Load(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFrom_Empty(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}
