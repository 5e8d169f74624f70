package mdminer_test

import (
	"testing"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mdminer.Errorf(mdminer.ENOTSUPPORTED, "site %q is not supported", "medium")

	assert.Equal(t, mdminer.ENOTSUPPORTED, mdminer.ErrorCode(err))
	assert.Equal(t, "site \"medium\" is not supported", mdminer.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdminer.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdminer.ErrorMessage(nil))
}

func TestErrorCode_GenericError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mdminer.EINTERNAL, mdminer.ErrorCode(assert.AnError))
}

func TestTrimText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "whitespace and newlines", in: "  \n Title \n  ", want: "Title"},
		{name: "already trimmed is unchanged", in: "Title", want: "Title"},
		{name: "empty", in: "", want: ""},
		{name: "only whitespace", in: " \n\t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mdminer.TrimText(tt.in))
			// Trimming is idempotent.
			assert.Equal(t, tt.want, mdminer.TrimText(mdminer.TrimText(tt.in)))
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "slash and colon", in: "A/B:C", want: "A_B_C"},
		{name: "all unsafe characters", in: `a/b\c:d*e?f"g<h>i|j`, want: "a_b_c_d_e_f_g_h_i_j"},
		{name: "safe title unchanged", in: "Hello World", want: "Hello World"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mdminer.SanitizeTitle(tt.in))
		})
	}
}
