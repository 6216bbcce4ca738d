package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/oematch/internal/core/domain"
)

var versionSamples = []string{
	"",
	"1.2.11",
	"1.0+gitAUTOINC+abcdef",
	"gitautoinc+123",
	"2:1.3.0+gitAUTOINC+ff00-r0",
	"AutoIncAUTOINC",
	"v3.0.9",
	"X",
	"0.1+git",
	"deadbeef",
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "1.2.11", want: "1.2.11"},
		{in: "1.0+gitAUTOINC+abcdef", want: "1.0+gitX"},
		{in: "gitautoinc+123", want: "gitX"},
		{in: "gitAUTOINC+abcdef", want: "gitX"},
		{in: "", want: ""},
		{in: "AUTOINC", want: "X"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	for _, s := range versionSamples {
		once := domain.Normalize(s)
		assert.Equal(t, once, domain.Normalize(once), "input %q", s)
	}
}

func TestSplitEpoch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		wantEpoch string
		wantVer   string
	}{
		{in: "2.3", wantEpoch: "", wantVer: "2.3"},
		{in: "1:2.3", wantEpoch: "1", wantVer: "2.3"},
		{in: "1:2:3", wantEpoch: "1", wantVer: "2:3"},
		{in: "3:1.0+gitAUTOINC+ff", wantEpoch: "3", wantVer: "1.0+gitX"},
		{in: "gitAUTOINC+ab:cd", wantEpoch: "gitAUTOINC+ab", wantVer: "cd"},
		{in: "", wantEpoch: "", wantVer: ""},
	}

	for _, tt := range tests {
		epoch, ver := domain.SplitEpoch(tt.in)
		assert.Equal(t, tt.wantEpoch, epoch, "epoch of %q", tt.in)
		assert.Equal(t, tt.wantVer, ver, "version of %q", tt.in)
	}
}

func TestBaseToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.2.3", domain.BaseToken("1.2.3+git999"))
	assert.Equal(t, "1.2", domain.BaseToken("1.2-r0"))
	assert.Equal(t, "abc", domain.BaseToken("abc"))
	assert.Empty(t, domain.BaseToken("+git"))
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		want     domain.Triple
		wantRest string
		wantOK   bool
	}{
		{in: "1.2.3", want: domain.Triple{Major: 1, Minor: 2, Patch: 3}, wantOK: true},
		{in: "v1.2", want: domain.Triple{Major: 1, Minor: 2}, wantOK: true},
		{in: "V01.02.03", want: domain.Triple{Major: 1, Minor: 2, Patch: 3}, wantOK: true},
		{in: "3.0.9+foo", want: domain.Triple{Major: 3, Patch: 9}, wantRest: "+foo", wantOK: true},
		{in: "2", want: domain.Triple{Major: 2}, wantOK: true},
		{in: "0", want: domain.Triple{}, wantOK: true},
		{in: "1.2.3.4", want: domain.Triple{Major: 1, Minor: 2, Patch: 3}, wantRest: ".4", wantOK: true},
		{in: "1.2+gitX", want: domain.Triple{Major: 1, Minor: 2}, wantRest: "+gitX", wantOK: true},
		{in: "deadbeef", wantRest: "deadbeef"},
		{in: "gitX", wantRest: "gitX"},
		{in: "", wantRest: ""},
		{in: "99999999999999999999999", wantRest: "99999999999999999999999"},
	}

	for _, tt := range tests {
		got, rest, ok := domain.Coerce(tt.in)
		require.Equal(t, tt.wantOK, ok, "ok for %q", tt.in)
		assert.Equal(t, tt.want, got, "triple for %q", tt.in)
		assert.Equal(t, tt.wantRest, rest, "remainder for %q", tt.in)
	}
}

func TestCoerce_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := append([]string{"v07.8", "10.0.1-rc1", "2.06"}, versionSamples...)
	for _, s := range inputs {
		got, _, ok := domain.Coerce(s)
		if !ok {
			continue
		}
		again, rest, ok := domain.Coerce(got.String())
		require.True(t, ok, "re-coerce %q", got.String())
		assert.Equal(t, got, again)
		assert.Empty(t, rest)
	}
}

func TestTriple_Compare(t *testing.T) {
	t.Parallel()

	a := domain.Triple{Major: 1, Minor: 2, Patch: 3}
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(domain.Triple{Major: 2}))
	assert.Equal(t, 1, a.Compare(domain.Triple{Major: 1, Minor: 1, Patch: 9}))
	assert.Equal(t, -1, a.Compare(domain.Triple{Major: 1, Minor: 2, Patch: 4}))
}
