package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssertion builds an unsigned JWT carrying the given claims, matching
// the shape of a Google identity credential.
func fakeAssertion(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := func(v any) string {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(data)
	}
	header := map[string]string{"alg": "none", "typ": "JWT"}
	return enc(header) + "." + enc(claims) + "."
}

func TestDecodeAssertion(t *testing.T) {
	testCases := []struct {
		name       string
		credential string
		wantEmail  string
		wantName   string
		wantErr    error
	}{
		{
			name:       "valid assertion",
			credential: "",
			wantEmail:  "21bcs001@lnmiit.ac.in",
			wantName:   "Asha Rao",
		},
		{
			name:    "empty credential",
			wantErr: ErrNoAssertion,
		},
		{
			name:       "whitespace credential",
			credential: "   ",
			wantErr:    ErrNoAssertion,
		},
		{
			name:       "not a jwt",
			credential: "garbage-token",
			wantErr:    ErrMalformedAssertion,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			credential := tc.credential
			if tc.wantEmail != "" {
				credential = fakeAssertion(t, map[string]any{
					"email": tc.wantEmail,
					"name":  tc.wantName,
				})
			}

			identity, err := DecodeAssertion(credential)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantEmail, identity.Email)
			assert.Equal(t, tc.wantName, identity.Name)
		})
	}
}

func TestDecodeAssertion_MissingEmail(t *testing.T) {
	credential := fakeAssertion(t, map[string]any{"name": "No Email"})
	_, err := DecodeAssertion(credential)
	assert.ErrorIs(t, err, ErrMalformedAssertion)
}

func TestCheckDomain(t *testing.T) {
	assert.NoError(t, CheckDomain("21bcs001@lnmiit.ac.in", "lnmiit.ac.in"))
	assert.ErrorIs(t, CheckDomain("someone@gmail.com", "lnmiit.ac.in"), ErrDomainNotAllowed)
	// A lookalike domain must not pass the suffix check.
	assert.ErrorIs(t, CheckDomain("x@evil-lnmiit.ac.in", "lnmiit.ac.in"), ErrDomainNotAllowed)
}

func TestDeriveStudentID(t *testing.T) {
	assert.Equal(t, "21bcs001", DeriveStudentID("21bcs001@lnmiit.ac.in"))
	assert.Equal(t, "plain", DeriveStudentID("plain"))
}
