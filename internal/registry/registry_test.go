package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/rpinject/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, session.Session) error { return nil }

func TestRegisterSetup_KeepsRegistrationOrder(t *testing.T) {
	r := New()
	r.RegisterSetup("junit5", noop)
	r.RegisterSetup("testng", noop)
	r.RegisterSetup("logback", noop)

	assert.Equal(t, []string{"junit5", "testng", "logback"}, r.Names())
	require.Len(t, r.Setups(), 3)

	s, ok := r.Lookup("testng")
	require.True(t, ok)
	assert.Equal(t, "testng", s.Name)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegisterSetup_DuplicatePanics(t *testing.T) {
	r := New()
	r.RegisterSetup("junit5", noop)

	assert.PanicsWithValue(t, "setup with name 'junit5' already registered", func() {
		r.RegisterSetup("junit5", noop)
	})
}

func TestValidateRegistry(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(r *Registry)
		wantErr []string
	}{
		{name: "valid", setup: func(r *Registry) { r.RegisterSetup("junit5", noop) }},
		{name: "empty registry is valid", setup: func(r *Registry) {}},
		{
			name: "all problems are reported",
			setup: func(r *Registry) {
				r.RegisterSetup(" ", noop)
				r.RegisterSetup("broken", nil)
			},
			wantErr: []string{"setup #0 has an empty name", "setup 'broken' has no function"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := New()
			tc.setup(r)

			err := r.ValidateRegistry(context.Background())

			if len(tc.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
