package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLister struct {
	names []string
	err   error
}

func (l staticLister) ListNames(ctx context.Context) ([]string, error) {
	return l.names, l.err
}

func TestFilterUnknown(t *testing.T) {
	svc := NewService(staticLister{names: []string{"Jan Novák", "Marie Svobodová"}})

	unknown, err := svc.FilterUnknown(context.Background(),
		[]string{"Jan Novák", "Radka Malá", "Marie Svobodová", "Petr Dvořák"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Radka Malá", "Petr Dvořák"}, unknown)
}

func TestFilterUnknown_CaseAndWhitespaceInsensitive(t *testing.T) {
	svc := NewService(staticLister{names: []string{"Jan Novák"}})

	unknown, err := svc.FilterUnknown(context.Background(), []string{"  jan novák "})

	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestFilterUnknown_EmptyRoster(t *testing.T) {
	svc := NewService(staticLister{})

	unknown, err := svc.FilterUnknown(context.Background(), []string{"Jan Novák"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Jan Novák"}, unknown)
}

func TestFilterUnknown_ListerError(t *testing.T) {
	svc := NewService(staticLister{err: errors.New("connection refused")})

	_, err := svc.FilterUnknown(context.Background(), []string{"Jan Novák"})

	assert.Error(t, err)
}
