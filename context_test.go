package logincode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ctxTestKey int

const (
	testKey ctxTestKey = -1
)

func TestContext(t *testing.T) {
	assert.NotNil(t, SetContext(nil, nil, nil))

	ctx := context.Background()
	ctx = context.WithValue(ctx, testKey, "hello")
	rw := httptest.NewRecorder()
	req := &http.Request{}

	ctx = SetContext(ctx, rw, req)

	assert.NotNil(t, ctx)
	rw2, req2 := fromContext(ctx)
	assert.Equal(t, rw, rw2)
	assert.Equal(t, req, req2)
	assert.Equal(t, "hello", ctx.Value(testKey))
}

func TestFromContextMissing(t *testing.T) {
	rw, req := fromContext(context.Background())
	assert.Nil(t, rw)
	assert.Nil(t, req)
}
