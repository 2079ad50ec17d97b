package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Arden28/studely-client/pkg/sdk"
)

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name     string
		state    sdk.State
		location sdk.Route
		want     sdk.GateResult
	}{
		{
			name:  "loading suspends, never redirects",
			state: sdk.State{Status: sdk.StatusLoading},
			want:  sdk.GateResult{Decision: sdk.DecisionSuspend},
		},
		{
			name:  "authenticated renders",
			state: sdk.State{Status: sdk.StatusAuthenticated, Identity: confirmedIdentity(), Provenance: sdk.ProvenanceConfirmed},
			want:  sdk.GateResult{Decision: sdk.DecisionRender},
		},
		{
			name:  "cached session renders too",
			state: sdk.State{Status: sdk.StatusAuthenticated, Identity: cachedIdentity(), Provenance: sdk.ProvenanceCached},
			want:  sdk.GateResult{Decision: sdk.DecisionRender},
		},
		{
			name:     "unauthenticated redirects to login preserving origin",
			state:    sdk.State{Status: sdk.StatusUnauthenticated},
			location: "/students",
			want:     sdk.GateResult{Decision: sdk.DecisionRedirect, Target: sdk.RouteLogin, From: "/students"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sdk.RequireAuth(tt.state, tt.location))
		})
	}
}

func TestGuestOnly(t *testing.T) {
	tests := []struct {
		name  string
		state sdk.State
		from  sdk.Route
		want  sdk.GateResult
	}{
		{
			name:  "loading suspends, never renders guest content",
			state: sdk.State{Status: sdk.StatusLoading},
			want:  sdk.GateResult{Decision: sdk.DecisionSuspend},
		},
		{
			name:  "authenticated bounces back to preserved origin",
			state: sdk.State{Status: sdk.StatusAuthenticated, Identity: confirmedIdentity()},
			from:  "/evaluate",
			want:  sdk.GateResult{Decision: sdk.DecisionRedirect, Target: "/evaluate"},
		},
		{
			name:  "authenticated without origin goes home",
			state: sdk.State{Status: sdk.StatusAuthenticated, Identity: confirmedIdentity()},
			want:  sdk.GateResult{Decision: sdk.DecisionRedirect, Target: sdk.RouteHome},
		},
		{
			name:  "unauthenticated renders guest content",
			state: sdk.State{Status: sdk.StatusUnauthenticated},
			want:  sdk.GateResult{Decision: sdk.DecisionRender},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sdk.GuestOnly(tt.state, tt.from))
		})
	}
}
