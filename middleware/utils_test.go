package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAuthType(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		want          string
		wantErr       bool
	}{
		{name: "Testcase #1: Positive", authorization: "Bearer s3cret", want: "s3cret"},
		{name: "Testcase #2: Positive, lower case prefix", authorization: "bearer s3cret", want: "s3cret"},
		{name: "Testcase #3: Negative, empty", authorization: "", wantErr: true},
		{name: "Testcase #4: Negative, prefix only", authorization: "Bearer ", wantErr: true},
		{name: "Testcase #5: Negative, other scheme", authorization: "Basic abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAuthType(BEARER, tt.authorization)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorization)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest("POST", "/emit", nil)
	assert.Equal(t, "", BearerToken(req))

	req.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", BearerToken(req))
}
