package tmux

import (
	"testing"

	"github.com/nmk-dotfiles/nmk/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersionNumberRoundTrip(t *testing.T) {
	for _, v := range Versions() {
		t.Run(v.String(), func(t *testing.T) {
			got, err := ParseVersionNumber(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}
}

func TestVersionOrdering(t *testing.T) {
	chronological := []string{"2.6", "2.7", "2.8", "2.9", "2.9a", "3.0", "3.0a", "3.1", "3.1a", "3.1b", "3.1c"}
	require.Len(t, Versions(), len(chronological))

	for i := range chronological {
		for j := i + 1; j < len(chronological); j++ {
			a, err := ParseVersionNumber(chronological[i])
			require.NoError(t, err)
			b, err := ParseVersionNumber(chronological[j])
			require.NoError(t, err)
			assert.True(t, a < b, "%s should be older than %s", a, b)
		}
	}
}

func TestParseVersionOutput(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     Version
		wantCode errors.ErrorCode
	}{
		{name: "trailing newline", raw: "tmux 3.1b\n", want: V31b},
		{name: "no newline", raw: "tmux 3.1b", want: V31b},
		{name: "surrounding whitespace", raw: "  tmux\t2.9a  \n", want: V29a},
		{name: "oldest", raw: "tmux 2.6", want: V26},
		{name: "extra tokens ignored", raw: "tmux 3.0 extra", want: V30},
		{name: "single token", raw: "garbage", wantCode: errors.ErrTmuxVersionBadOutput},
		{name: "empty", raw: "", wantCode: errors.ErrTmuxVersionBadOutput},
		{name: "whitespace only", raw: " \n", wantCode: errors.ErrTmuxVersionBadOutput},
		{name: "unknown release", raw: "tmux 9.9", wantCode: errors.ErrTmuxVersionUnsupported},
		{name: "development build", raw: "tmux next-3.2", wantCode: errors.ErrTmuxVersionUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersionOutput(tt.raw)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVersionNumberIsExact(t *testing.T) {
	for _, s := range []string{"9.9", "3", "3.1d", "3.1B", " 3.1", "v3.1", "3.10", ""} {
		_, err := ParseVersionNumber(s)
		require.Error(t, err, s)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTmuxVersionUnsupported))
		assert.Equal(t, s, errors.GetErrorDetails(err)["input"])
	}
}

func TestBadOutputCarriesInput(t *testing.T) {
	_, err := ParseVersionOutput("garbage")
	require.Error(t, err)
	assert.Equal(t, "garbage", errors.GetErrorDetails(err)["input"])
	assert.Contains(t, err.Error(), "garbage")
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "2.6", V26.String())
	assert.Equal(t, "3.1c", V31c.String())
	assert.Equal(t, "unknown", Version(-1).String())
	assert.Equal(t, "unknown", Version(len(versionNames)).String())
}
