package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseDistanceBudget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    domain.DistanceBudget
		wantErr bool
	}{
		{in: "0.0.0", want: domain.DistanceBudget{}},
		{in: "0.1.0", want: domain.DistanceBudget{Minor: 1}},
		{in: "2.0.5", want: domain.DistanceBudget{Major: 2, Patch: 5}},
		{in: "1", want: domain.DistanceBudget{Major: 1}},
		{in: "", want: domain.DistanceBudget{}},
		{in: "0.x.0", wantErr: true},
		{in: "a.b.c", wantErr: true},
		{in: "1.2.3.4", wantErr: true},
		{in: "0.-1.0", wantErr: true},
		{in: "1..0", wantErr: true},
	}

	for _, tt := range tests {
		got, err := domain.ParseDistanceBudget(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			assert.EqualError(t, err, domain.ErrInvalidDistanceBudget.Error())

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, strings.TrimSpace(tt.in), zErr.Metadata()["value"])
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDistanceBudget_Allows(t *testing.T) {
	t.Parallel()

	v := func(maj, mnr, pat int) domain.Triple {
		return domain.Triple{Major: maj, Minor: mnr, Patch: pat}
	}

	tests := []struct {
		name      string
		budget    domain.DistanceBudget
		local     domain.Triple
		candidate domain.Triple
		want      bool
	}{
		{name: "zero budget disables", budget: domain.DistanceBudget{}, local: v(2, 0, 0), candidate: v(1, 9, 0), want: false},
		{name: "newer candidate rejected", budget: domain.DistanceBudget{Major: 5}, local: v(1, 0, 0), candidate: v(1, 0, 1), want: false},
		{name: "major within", budget: domain.DistanceBudget{Major: 1}, local: v(3, 0, 0), candidate: v(2, 9, 9), want: true},
		{name: "major exceeded", budget: domain.DistanceBudget{Major: 1}, local: v(3, 0, 0), candidate: v(1, 0, 0), want: false},
		{name: "minor requires equal major", budget: domain.DistanceBudget{Minor: 1}, local: v(3, 0, 9), candidate: v(2, 9, 0), want: false},
		{name: "minor same minor", budget: domain.DistanceBudget{Minor: 1}, local: v(3, 0, 9), candidate: v(3, 0, 7), want: true},
		{name: "minor within", budget: domain.DistanceBudget{Minor: 2}, local: v(3, 4, 0), candidate: v(3, 2, 8), want: true},
		{name: "minor exceeded", budget: domain.DistanceBudget{Minor: 1}, local: v(3, 4, 0), candidate: v(3, 2, 0), want: false},
		{name: "major wins precedence", budget: domain.DistanceBudget{Major: 1, Minor: 0, Patch: 1}, local: v(3, 4, 0), candidate: v(2, 0, 0), want: true},
		{name: "patch requires equal minor", budget: domain.DistanceBudget{Patch: 3}, local: v(1, 2, 3), candidate: v(1, 1, 3), want: false},
		{name: "patch within", budget: domain.DistanceBudget{Patch: 3}, local: v(1, 2, 3), candidate: v(1, 2, 0), want: true},
		{name: "patch exceeded", budget: domain.DistanceBudget{Patch: 1}, local: v(1, 2, 3), candidate: v(1, 2, 1), want: false},
		{name: "equal versions allowed", budget: domain.DistanceBudget{Patch: 1}, local: v(1, 2, 3), candidate: v(1, 2, 3), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.budget.Allows(tt.local, tt.candidate))
		})
	}
}

func TestDistanceBudget_String(t *testing.T) {
	t.Parallel()

	b, err := domain.ParseDistanceBudget("0.1.0")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", b.String())
	assert.False(t, b.IsZero())
	assert.True(t, domain.DistanceBudget{}.IsZero())
}
